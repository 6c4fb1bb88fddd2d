package adapthttp

import (
	"net/http"

	"dosetrack/internal/domain"
)

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sched := s.tracker.Schedule()
		writeJSON(w, http.StatusOK, map[string]any{"schedule": sched, "weeklyDose": sched.WeeklyDose()})

	case http.MethodPut:
		var body domain.ScheduleConfig
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		sched, err := s.tracker.SetSchedule(r.Context(), body)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"schedule": sched, "weeklyDose": sched.WeeklyDose()})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
