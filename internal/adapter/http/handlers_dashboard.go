package adapthttp

import (
	"net/http"

	"dosetrack/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"today":     localDayString(s.tracker.Now()),
		"dashboard": s.tracker.Dashboard(),
	})
}

func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.SiteRotation())
}

func (s *Server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.tracker.Calculator())

	case http.MethodPut:
		var body domain.CalculatorInputs
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		calc, err := s.tracker.SetCalculator(r.Context(), body)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, calc)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
