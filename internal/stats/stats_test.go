package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/neuroscanhq/neuroscan/internal/db"
)

func testHistory() *History {
	return &History{
		Accuracy:    []float64{0.61, 0.85, 0.9312},
		ValAccuracy: []float64{0.58, 0.79, 0.9075},
		Loss:        []float64{1.1, 0.5, 0.21347},
		ValLoss:     []float64{1.3, 0.7, 0.31},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testHistory())

	if s.MaxAccuracy != 93.12 {
		t.Errorf("MaxAccuracy = %v, want 93.12", s.MaxAccuracy)
	}
	if s.MaxValAccuracy != 90.75 {
		t.Errorf("MaxValAccuracy = %v, want 90.75", s.MaxValAccuracy)
	}
	if s.FinalLoss != 0.2135 {
		t.Errorf("FinalLoss = %v, want 0.2135", s.FinalLoss)
	}
	if s.Epochs != 3 {
		t.Errorf("Epochs = %d, want 3", s.Epochs)
	}
}

func TestImportAndLatestRun(t *testing.T) {
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	store := NewStore(d)
	ctx := context.Background()

	var progressed int
	run, err := store.ImportRun(ctx, "resnet-v2", testHistory(), func(int) { progressed++ })
	if err != nil {
		t.Fatalf("ImportRun: %v", err)
	}
	if run.ID == "" {
		t.Error("expected a generated run ID")
	}
	if progressed != 3 {
		t.Errorf("progress callback invoked %d times, want 3", progressed)
	}

	got, history, err := store.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if got.ID != run.ID || got.Name != "resnet-v2" {
		t.Errorf("LatestRun = %+v, want run %s", got, run.ID)
	}
	if got.Summary != run.Summary {
		t.Errorf("summary = %+v, want %+v", got.Summary, run.Summary)
	}
	if len(history.Accuracy) != 3 || history.Accuracy[2] != 0.9312 {
		t.Errorf("history accuracy = %v", history.Accuracy)
	}
	if len(history.ValLoss) != 3 || history.ValLoss[0] != 1.3 {
		t.Errorf("history val_loss = %v", history.ValLoss)
	}
}

func TestImportRunRejectsBadHistory(t *testing.T) {
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	store := NewStore(d)

	if _, err := store.ImportRun(context.Background(), "empty", &History{}, nil); err == nil {
		t.Error("expected error for empty history")
	}

	uneven := testHistory()
	uneven.ValLoss = uneven.ValLoss[:2]
	if _, err := store.ImportRun(context.Background(), "uneven", uneven, nil); err == nil {
		t.Error("expected error for mismatched metric lengths")
	}
}

func TestLatestRunEmpty(t *testing.T) {
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	if _, _, err := NewStore(d).LatestRun(context.Background()); err != ErrNoRuns {
		t.Errorf("LatestRun on empty db = %v, want ErrNoRuns", err)
	}
}

func TestStatsRoute(t *testing.T) {
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	store := NewStore(d)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status with no runs = %d, want 404", rec.Code)
	}

	if _, err := store.ImportRun(context.Background(), "cnn", testHistory(), nil); err != nil {
		t.Fatalf("ImportRun: %v", err)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Run == nil || resp.Run.Name != "cnn" {
		t.Errorf("run = %+v", resp.Run)
	}
	if resp.Summary.Epochs != 3 {
		t.Errorf("summary epochs = %d, want 3", resp.Summary.Epochs)
	}
	if len(resp.History.Loss) != 3 {
		t.Errorf("history loss = %v", resp.History.Loss)
	}
}

func TestStatsRouteUnconfigured(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
