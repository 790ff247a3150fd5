package predict

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neuroscanhq/neuroscan/internal/classifier"
	"github.com/neuroscanhq/neuroscan/internal/imaging"
)

// maxUploadBytes caps how much of an upload is read into memory.
const maxUploadBytes = 32 << 20

// RegisterRoutes mounts the prediction API routes.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/predict", handlePredict(svc))
	r.Get("/api/model-info", handleModelInfo(svc))
}

func handlePredict(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, `{"error":"expected multipart form with a file field"}`, http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"error":"file field is required"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			http.Error(w, `{"error":"reading upload"}`, http.StatusBadRequest)
			return
		}

		result, err := svc.Classify(r.Context(), data)
		if err != nil {
			writeClassifyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func writeClassifyError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, ErrModelUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
	case errors.Is(err, imaging.ErrInvalidImage):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func handleModelInfo(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := svc.ModelInfo()
		if info == nil {
			info = &classifier.Info{
				Name:        "Model Not Loaded",
				Description: "The AI engine is currently offline or the model could not be reached.",
				Params:      "0",
				Stats:       []classifier.Stat{},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	}
}
