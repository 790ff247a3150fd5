package chat

import (
	"fmt"
	"strings"

	"github.com/neuroscanhq/neuroscan/internal/classifier"
	"github.com/neuroscanhq/neuroscan/internal/knowledge"
)

// personaPrompt defines the assistant's role and tone. It is constant across
// all conversations.
const personaPrompt = `You are NeuroBot, an intelligent medical education assistant for a Brain Tumor Detection platform. Your role is to:

1. **Explain AI predictions** in simple, understandable terms
2. **Educate users** about different brain tumor types (Glioma, Meningioma, Pituitary)
3. **Answer questions** about symptoms, treatments, and medical concepts
4. **Provide context** about the AI model's capabilities and limitations

**CRITICAL RULES:**
- Always include a medical disclaimer when discussing health topics
- Never provide definitive diagnoses - emphasize this is educational only
- Encourage users to consult healthcare professionals for medical advice
- Be empathetic and supportive, especially when discussing concerning results
- Use simple language, avoid excessive medical jargon
- If you don't know something, admit it rather than guessing

**Tone:** Friendly, professional, educational, and compassionate

**Medical Disclaimer Template:**
"Important: This AI tool is for educational purposes only. Always consult qualified healthcare professionals for medical diagnosis and treatment."

When users ask about their scan results, reference the specific prediction and confidence level provided in the context.`

// safetyReminder closes out synthesized failure replies.
const safetyReminder = "If you have medical concerns, please consult a healthcare professional immediately."

// BuildScanContext renders the supplementary instruction block describing the
// current scan. A nil scan produces an empty block. The output is pure text
// and deterministic for a given scan.
func BuildScanContext(scan *ScanContext) string {
	if scan == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("**CURRENT SCAN CONTEXT:**\n")
	fmt.Fprintf(&b, "- Prediction: %s\n", scan.Prediction)
	fmt.Fprintf(&b, "- Confidence: %g%%\n", scan.Confidence)

	if len(scan.Scores) > 0 {
		b.WriteString("- All Probabilities:\n")
		for i, score := range scan.Scores {
			if i >= len(classifier.DisplayNames) {
				break
			}
			fmt.Fprintf(&b, "  - %s: %.1f%%\n", classifier.DisplayNames[i], score*100)
		}
	}

	if entry, ok := knowledge.Lookup(scan.Prediction); ok {
		b.WriteString("\n**TUMOR TYPE INFO:**\n")
		fmt.Fprintf(&b, "- Description: %s\n", entry.ShortDescription)
		fmt.Fprintf(&b, "- Severity: %s\n", entry.Severity)
	}

	b.WriteString("\nUse this information to provide context-aware responses about the user's scan.\n")
	return b.String()
}

// lowConfidenceThreshold is the confidence percentage below which the
// assistant proposes asking about model uncertainty.
const lowConfidenceThreshold = 70

// Suggestions derives follow-up questions for the client to offer. Without a
// scan it returns a fixed generic list; with one it templates questions
// around the predicted label.
func Suggestions(scan *ScanContext) []string {
	if scan == nil {
		return []string{
			"What are the different types of brain tumors?",
			"How does AI detect brain tumors?",
			"What are common symptoms of brain tumors?",
			"How accurate is this AI model?",
		}
	}

	suggestions := []string{
		fmt.Sprintf("What is a %s?", scan.Prediction),
		"Explain my results in simple terms",
		"What should I do next?",
		"How accurate is this prediction?",
	}

	if scan.Confidence < lowConfidenceThreshold {
		suggestions = append(suggestions, "Why is the confidence low?")
	}

	return suggestions
}
