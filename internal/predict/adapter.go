// Package predict adapts raw image uploads into labeled predictions from the
// injected classifier.
package predict

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/neuroscanhq/neuroscan/internal/classifier"
	"github.com/neuroscanhq/neuroscan/internal/imaging"
)

// ErrModelUnavailable reports that no classifier is loaded. It is checked
// before any preprocessing work.
var ErrModelUnavailable = errors.New("model not loaded")

// Result is the outcome of one inference call. It is immutable and never
// persisted.
type Result struct {
	// Prediction is the label at the argmax index of Scores.
	Prediction string `json:"prediction"`
	// Index is the argmax position in the label enumeration.
	Index int `json:"index"`
	// Confidence is the maximum class probability as a percentage in [0,100],
	// rounded to two decimal places.
	Confidence float64 `json:"confidence"`
	// Scores holds one probability per class, in label-enumeration order.
	Scores []float64 `json:"all_scores"`
}

// Service runs inference against an injected classifier.
type Service struct {
	model      classifier.Classifier
	info       *classifier.Info
	imageSize  int
	pixelScale float32
}

// NewService creates a prediction service. A nil model is valid and makes
// Classify fail with ErrModelUnavailable until a model is supplied.
func NewService(model classifier.Classifier, info *classifier.Info, imageSize int, pixelScale float64) *Service {
	return &Service{
		model:      model,
		info:       info,
		imageSize:  imageSize,
		pixelScale: float32(pixelScale),
	}
}

// ModelInfo returns the model card, or nil when no model is loaded.
func (s *Service) ModelInfo() *classifier.Info {
	if s.model == nil {
		return nil
	}
	return s.info
}

// Classify decodes the uploaded bytes, normalizes them to the model's input
// shape, and runs a single synchronous inference.
func (s *Service) Classify(ctx context.Context, data []byte) (*Result, error) {
	if s.model == nil {
		return nil, ErrModelUnavailable
	}

	tensor, err := imaging.Normalize(data, s.imageSize, s.pixelScale)
	if err != nil {
		return nil, err
	}

	scores, err := s.model.Predict(ctx, tensor)
	if err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}
	if len(scores) != len(classifier.Labels) {
		return nil, fmt.Errorf("classifier returned %d scores, expected %d", len(scores), len(classifier.Labels))
	}

	index := 0
	for i, score := range scores {
		if score > scores[index] {
			index = i
		}
	}

	result := &Result{
		Prediction: classifier.Labels[index],
		Index:      index,
		Confidence: roundPercent(float64(scores[index])),
		Scores:     make([]float64, len(scores)),
	}
	for i, score := range scores {
		result.Scores[i] = float64(score)
	}
	return result, nil
}

// roundPercent converts a probability to a percentage rounded to two
// decimal places.
func roundPercent(p float64) float64 {
	return math.Round(p*100*100) / 100
}
