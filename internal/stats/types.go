package stats

import "time"

// History holds the per-epoch metric curves of one training run, as exported
// by the training pipeline.
type History struct {
	Accuracy    []float64 `json:"accuracy"`
	ValAccuracy []float64 `json:"val_accuracy"`
	Loss        []float64 `json:"loss"`
	ValLoss     []float64 `json:"val_loss"`
}

// Summary condenses a training run for display.
type Summary struct {
	MaxAccuracy    float64 `json:"max_accuracy"`
	MaxValAccuracy float64 `json:"max_val_accuracy"`
	FinalLoss      float64 `json:"final_loss"`
	Epochs         int     `json:"epochs"`
}

// Run is one imported training run.
type Run struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImportedAt time.Time `json:"imported_at"`
	Summary    Summary   `json:"summary"`
}
