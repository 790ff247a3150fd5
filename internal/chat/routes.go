package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat API routes.
func RegisterRoutes(r chi.Router, engine *Engine) {
	r.Post("/api/chat", handleChat(engine))
}

type chatRequest struct {
	Message   string       `json:"message"`
	Context   *ScanContext `json:"context,omitempty"`
	SessionID string       `json:"session_id,omitempty"`
}

func handleChat(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
		}

		// A context object without a prediction is treated as absent.
		scan := req.Context
		if scan != nil && scan.Prediction == "" {
			scan = nil
		}

		reply := engine.Respond(r.Context(), req.Message, scan, req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}
}
