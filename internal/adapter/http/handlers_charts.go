package adapthttp

import (
	"net/http"
)

func (s *Server) handleChartsWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = "lb"
	}

	points, err := s.tracker.WeightSeries(unit)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"unit":  unit,
		"today": localDayString(s.tracker.Now()),
		"items": points,
	})
}
