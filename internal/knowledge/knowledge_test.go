package knowledge

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Glioma Tumour", "glioma"},
		{"glioma tumor", "glioma"},
		{"MENINGIOMA TUMOUR", "meningioma"},
		{"Pituitary Tumour", "pituitary"},
		{"No Tumour", "normal"},
		{"no tumor", "normal"},
		{"  Glioma Tumour  ", "glioma"},
		{"something else", "something else"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.label); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	entry, ok := Lookup("Glioma Tumour")
	if !ok {
		t.Fatal("expected glioma entry")
	}
	if entry.Name != "Glioma Tumour" {
		t.Errorf("unexpected name %q", entry.Name)
	}
	if entry.Severity == "" || entry.ShortDescription == "" {
		t.Error("entry is missing severity or short description")
	}

	if _, ok := Lookup("Ependymoma"); ok {
		t.Error("unknown label should miss, not fail")
	}
}

func TestLookupIdempotent(t *testing.T) {
	first, ok1 := Lookup("Meningioma Tumour")
	second, ok2 := Lookup("Meningioma Tumour")
	if !ok1 || !ok2 {
		t.Fatal("expected meningioma entry")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated lookups must return identical results")
	}
}

func TestNoTumourEntryIsEmptyButValid(t *testing.T) {
	entry, ok := Lookup("No Tumour")
	if !ok {
		t.Fatal("expected normal entry")
	}
	if len(entry.Symptoms) != 0 || len(entry.TreatmentOptions) != 0 {
		t.Error("normal entry should carry no symptoms or treatments")
	}
	if entry.Severity != "None" {
		t.Errorf("unexpected severity %q", entry.Severity)
	}
}

func TestFAQs(t *testing.T) {
	all := FAQs()
	if len(all) != 8 {
		t.Fatalf("expected 8 FAQs, got %d", len(all))
	}
	for i, faq := range all {
		if faq.Question == "" || faq.Answer == "" {
			t.Errorf("FAQ %d has empty fields", i)
		}
	}
}

// --- semantic search ---

// hashEmbedder is a deterministic offline stand-in for a real embedding model.
type hashEmbedder struct{}

func (hashEmbedder) Name() string    { return "hash-test" }
func (hashEmbedder) Dimensions() int { return 16 }

func (hashEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, 16)
		h := fnv.New32a()
		h.Write([]byte(text))
		seed := h.Sum32()
		for j := range vec {
			seed = seed*1664525 + 1013904223
			vec[j] = float32(seed%1000)/1000 - 0.5
		}
		out[i] = vec
	}
	return out, nil
}

func TestIndexSearch(t *testing.T) {
	ctx := context.Background()
	index, err := NewIndex(ctx, hashEmbedder{})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	hits, err := index.Search(ctx, "what causes gliomas", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 || len(hits) > 3 {
		t.Fatalf("expected 1-3 hits, got %d", len(hits))
	}
	for _, hit := range hits {
		if hit.Title == "" || hit.Content == "" {
			t.Errorf("hit %q has empty fields", hit.ID)
		}
		if hit.Kind != "entry" && hit.Kind != "faq" {
			t.Errorf("unexpected hit kind %q", hit.Kind)
		}
	}
}

// --- HTTP routes ---

func TestKnowledgeRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, nil)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]*Entry
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 4 {
			t.Errorf("expected 4 entries, got %d", len(got))
		}
	})

	t.Run("get by type", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/pituitary", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get unknown type", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/schwannoma", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("faqs", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/faqs", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("search unconfigured", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/search?q=glioma", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestSearchRoute(t *testing.T) {
	index, err := NewIndex(context.Background(), hashEmbedder{})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/search?q=benign+tumors&limit=2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var hits []Hit
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(hits) == 0 || len(hits) > 2 {
		t.Errorf("expected 1-2 hits, got %d", len(hits))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/knowledge/search", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without q, got %d", w.Code)
	}
}
