package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/neuroscanhq/neuroscan/internal/imaging"
)

// Remote invokes a model exported behind a TensorFlow Serving compatible
// REST API (POST {base}/v1/models/{name}:predict).
type Remote struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewRemote creates a classifier backed by the serving endpoint at baseURL.
func NewRemote(baseURL, model string) *Remote {
	return &Remote{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float32 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

func (r *Remote) Predict(ctx context.Context, t *imaging.Tensor) ([]float32, error) {
	body, err := json.Marshal(predictRequest{Instances: t.NHWC()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", r.baseURL, r.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("serving request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read serving response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serving returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp predictResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal serving response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("serving error: %s", resp.Error)
	}
	if len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("serving returned no predictions")
	}

	return resp.Predictions[0], nil
}
