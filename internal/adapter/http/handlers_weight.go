package adapthttp

import (
	"net/http"
)

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.tracker.Weights()})

	case http.MethodPost:
		var body struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, added, err := s.tracker.AddWeight(r.Context(), body.Date, body.Weight)
		if err != nil {
			writeAppError(w, err)
			return
		}
		if !added {
			writeJSON(w, http.StatusOK, map[string]any{"added": false})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"added": true, "entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeightByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := idFromPath(r, "/weights/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	deleted, err := s.tracker.DeleteWeight(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
