// Package knowledge holds the static educational content about brain tumor
// types and answers label lookups for the assistant.
package knowledge

import "strings"

// Entry is the static educational record for one classification outcome.
type Entry struct {
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Types            []string `json:"types"`
	Symptoms         []string `json:"symptoms"`
	RiskFactors      []string `json:"risk_factors"`
	TreatmentOptions []string `json:"treatment_options"`
	Prognosis        string   `json:"prognosis"`
	Prevalence       string   `json:"prevalence"`
	TypicalAge       string   `json:"typical_age"`
	Severity         string   `json:"severity"`
	Color            string   `json:"color"`
}

// FAQ is one frequently asked question with its canned answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NormalizeKey reduces a raw prediction label to a knowledge-base key:
// case-insensitive, trailing "tumour"/"tumor" stripped, and the bare "no"
// that remains of "No Tumour" mapped to the normal/no-finding key.
func NormalizeKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.TrimSuffix(key, " tumour")
	key = strings.TrimSuffix(key, " tumor")
	if key == "no" {
		key = "normal"
	}
	return key
}

// Lookup returns the entry for a prediction label. Absence is a valid
// outcome, not an error.
func Lookup(label string) (*Entry, bool) {
	e, ok := entries[NormalizeKey(label)]
	return e, ok
}

// All returns the full knowledge base keyed by normalized label.
func All() map[string]*Entry {
	return entries
}

// FAQs returns all frequently asked questions.
func FAQs() []FAQ {
	return faqs
}
