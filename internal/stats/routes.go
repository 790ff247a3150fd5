package stats

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type statsResponse struct {
	Run     *Run     `json:"run"`
	History *History `json:"history"`
	Summary Summary  `json:"summary"`
}

// RegisterRoutes mounts the training statistics API routes. The store may be
// nil when no database is configured; the endpoint then reports 503.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/stats", handleStats(store))
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			http.Error(w, `{"error":"training statistics are not configured"}`, http.StatusServiceUnavailable)
			return
		}

		run, history, err := store.LatestRun(r.Context())
		if errors.Is(err, ErrNoRuns) {
			http.Error(w, `{"error":"no training history has been imported"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, `{"error":"loading training history"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statsResponse{Run: run, History: history, Summary: run.Summary})
	}
}
