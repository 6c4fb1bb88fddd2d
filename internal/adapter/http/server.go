package adapthttp

import (
	"net/http"

	"golang.org/x/time/rate"

	"dosetrack/internal/app"
	"dosetrack/internal/metrics"
)

// Server is the driving HTTP adapter that routes requests to the tracker.
type Server struct {
	tracker *app.Tracker
	webDir  string
	metrics *metrics.Metrics
	limiter *rate.Limiter
}

// New creates a Server wired to the given tracker.
func New(t *app.Tracker, webDir string) *Server {
	return &Server{tracker: t, webDir: webDir}
}

// WithMetrics records request metrics and serves them at /metrics.
func (s *Server) WithMetrics(m *metrics.Metrics) *Server {
	s.metrics = m
	return s
}

// WithWriteLimit rejects mutating requests beyond the limiter's rate.
func (s *Server) WithWriteLimit(l *rate.Limiter) *Server {
	s.limiter = l
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/dashboard", s.handleDashboard)
	api.HandleFunc("/sites", s.handleSites)
	api.HandleFunc("/calculator", s.handleCalculator)

	api.HandleFunc("/injections", s.handleInjections)
	api.HandleFunc("/injections/", s.handleInjectionByID)

	api.HandleFunc("/weights", s.handleWeights)
	api.HandleFunc("/weights/", s.handleWeightByID)

	api.HandleFunc("/schedule", s.handleSchedule)
	api.HandleFunc("/charts/weight", s.handleChartsWeight)

	api.HandleFunc("/export", s.handleExport)
	api.HandleFunc("/import", s.handleImport)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", s.writeLimit(api)))
	if s.metrics != nil {
		root.Handle("/metrics", s.metrics.Handler())
	}
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
