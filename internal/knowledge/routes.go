package knowledge

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the knowledge base API routes. The search index may
// be nil when no embedder is configured; the search endpoint then reports 503.
func RegisterRoutes(r chi.Router, index *Index) {
	r.Route("/api/knowledge", func(r chi.Router) {
		r.Get("/", handleList)
		r.Get("/faqs", handleFAQs)
		r.Get("/search", handleSearch(index))
		r.Get("/{type}", handleGet)
	})
}

func handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(All())
}

func handleFAQs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FAQs())
}

func handleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := Lookup(chi.URLParam(r, "type"))
	if !ok {
		http.Error(w, `{"error":"unknown tumor type"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func handleSearch(index *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			http.Error(w, `{"error":"semantic search is not configured"}`, http.StatusServiceUnavailable)
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, `{"error":"q is required"}`, http.StatusBadRequest)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		hits, err := index.Search(r.Context(), query, limit)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hits)
	}
}
