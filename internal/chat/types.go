package chat

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single immutable message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ScanContext carries the subset of a prediction result relevant to the
// conversation. A conversation may have no associated scan.
type ScanContext struct {
	Prediction string    `json:"prediction"`
	Confidence float64   `json:"confidence"`
	Scores     []float64 `json:"all_scores,omitempty"`
}

// Reply is the orchestrator's answer to one chat turn.
type Reply struct {
	Response    string   `json:"response"`
	SessionID   string   `json:"session_id"`
	Suggestions []string `json:"suggestions"`
}
