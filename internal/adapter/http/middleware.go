package adapthttp

import (
	"errors"
	"log"
	"net/http"
	"time"
)

var errTooManyWrites = errors.New("too many write requests, slow down")

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs method, path, status and duration of every request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond))
		if s.metrics != nil {
			s.metrics.ObserveRequest(r.Method, rec.status, elapsed)
		}
	})
}

// writeLimit answers 429 to mutating requests once the limiter is exhausted.
func (s *Server) writeLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && r.Method != http.MethodGet && r.Method != http.MethodHead && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errTooManyWrites)
			return
		}
		next.ServeHTTP(w, r)
	})
}
