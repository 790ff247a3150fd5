// Package classifier defines the classification label set and the interface
// to the trained brain-MRI model.
package classifier

import (
	"context"

	"github.com/neuroscanhq/neuroscan/internal/imaging"
)

// Labels is the fixed, ordered list of classification outcomes. The order is
// significant: score vectors returned by the model are positional, indexed by
// this slice.
var Labels = []string{
	"Glioma Tumour",
	"Meningioma Tumour",
	"No Tumour",
	"Pituitary Tumour",
}

// DisplayNames are the short class names used when listing per-class
// probabilities, in the same order as Labels.
var DisplayNames = []string{"Glioma", "Meningioma", "Normal", "Pituitary"}

// Classifier is an opaque, already-loaded model: tensor in, one probability
// per label out. Implementations may block the calling goroutine.
type Classifier interface {
	Predict(ctx context.Context, t *imaging.Tensor) ([]float32, error)
}

// Info describes the loaded model for the /api/model-info surface.
type Info struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Params      string `json:"params"`
	Stats       []Stat `json:"stats"`
}

// Stat is one label/value pair on the model card.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
