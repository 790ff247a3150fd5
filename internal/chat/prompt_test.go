package chat

import (
	"strings"
	"testing"
)

func TestBuildScanContextNil(t *testing.T) {
	if block := BuildScanContext(nil); block != "" {
		t.Errorf("nil scan should produce an empty block, got %q", block)
	}
}

func TestBuildScanContext(t *testing.T) {
	scan := &ScanContext{
		Prediction: "Glioma Tumour",
		Confidence: 55,
		Scores:     []float64{0.55, 0.2, 0.15, 0.1},
	}

	block := BuildScanContext(scan)

	for _, want := range []string{
		"- Prediction: Glioma Tumour",
		"- Confidence: 55%",
		"- Glioma: 55.0%",
		"- Meningioma: 20.0%",
		"- Normal: 15.0%",
		"- Pituitary: 10.0%",
		"**TUMOR TYPE INFO:**",
		"- Severity: Varies (Grade I-IV)",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("block missing %q:\n%s", want, block)
		}
	}
}

func TestBuildScanContextDeterministic(t *testing.T) {
	scan := &ScanContext{Prediction: "Meningioma Tumour", Confidence: 88.5, Scores: []float64{0.05, 0.885, 0.04, 0.025}}
	if BuildScanContext(scan) != BuildScanContext(scan) {
		t.Error("context block must be deterministic")
	}
}

func TestBuildScanContextNoScores(t *testing.T) {
	block := BuildScanContext(&ScanContext{Prediction: "No Tumour", Confidence: 97.12})
	if strings.Contains(block, "All Probabilities") {
		t.Error("probability listing should be omitted without scores")
	}
	if !strings.Contains(block, "- Confidence: 97.12%") {
		t.Errorf("confidence missing from block:\n%s", block)
	}
	// "No Tumour" normalizes onto the normal/no-finding entry.
	if !strings.Contains(block, "- Severity: None") {
		t.Errorf("expected normal entry info:\n%s", block)
	}
}

func TestBuildScanContextUnknownLabel(t *testing.T) {
	block := BuildScanContext(&ScanContext{Prediction: "Acoustic Neuroma", Confidence: 42})
	if strings.Contains(block, "TUMOR TYPE INFO") {
		t.Error("lookup miss must omit the knowledge section, not fail")
	}
	if !strings.Contains(block, "- Prediction: Acoustic Neuroma") {
		t.Errorf("raw label missing:\n%s", block)
	}
}

func TestSuggestionsGeneric(t *testing.T) {
	got := Suggestions(nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 generic suggestions, got %d", len(got))
	}
	if got[0] != "What are the different types of brain tumors?" {
		t.Errorf("unexpected first suggestion %q", got[0])
	}
}

func TestSuggestionsLowConfidence(t *testing.T) {
	scan := &ScanContext{
		Prediction: "Glioma Tumour",
		Confidence: 55,
		Scores:     []float64{0.55, 0.2, 0.15, 0.1},
	}

	got := Suggestions(scan)
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions at confidence 55, got %d: %v", len(got), got)
	}
	if got[0] != "What is a Glioma Tumour?" {
		t.Errorf("unexpected templated suggestion %q", got[0])
	}
	if got[4] != "Why is the confidence low?" {
		t.Errorf("expected low-confidence question last, got %q", got[4])
	}
}

func TestSuggestionsHighConfidence(t *testing.T) {
	got := Suggestions(&ScanContext{Prediction: "Glioma Tumour", Confidence: 90})
	if len(got) != 4 {
		t.Fatalf("expected 4 suggestions at confidence 90, got %d", len(got))
	}
	for _, s := range got {
		if s == "Why is the confidence low?" {
			t.Error("low-confidence question must not appear at confidence 90")
		}
	}
}

func TestSuggestionsThresholdBoundary(t *testing.T) {
	// Exactly 70 is not "low".
	if got := Suggestions(&ScanContext{Prediction: "Pituitary Tumour", Confidence: 70}); len(got) != 4 {
		t.Errorf("confidence 70 should not trigger the extra question, got %d", len(got))
	}
	if got := Suggestions(&ScanContext{Prediction: "Pituitary Tumour", Confidence: 69.99}); len(got) != 5 {
		t.Errorf("confidence 69.99 should trigger the extra question, got %d", len(got))
	}
}
