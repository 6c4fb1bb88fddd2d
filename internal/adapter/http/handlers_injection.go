package adapthttp

import (
	"net/http"
)

func (s *Server) handleInjections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items := s.tracker.Injections()
		if limit := intQuery(r, "limit", 0); limit > 0 && limit < len(items) {
			items = items[:limit]
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Date string  `json:"date"`
			Site string  `json:"site"`
			Dose float64 `json:"dose"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, logged, err := s.tracker.LogInjection(r.Context(), body.Date, body.Site, body.Dose)
		if err != nil {
			writeAppError(w, err)
			return
		}
		if !logged {
			writeJSON(w, http.StatusOK, map[string]any{"logged": false})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"logged": true, "entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleInjectionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := idFromPath(r, "/injections/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	deleted, err := s.tracker.DeleteInjection(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
