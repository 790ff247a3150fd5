package chat

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/neuroscanhq/neuroscan/internal/llm"
)

// Sampling constants for the conversational backend. These are deliberately
// not user-configurable.
const (
	chatTemperature = 0.7
	chatTopP        = 0.9
	chatMaxTokens   = 800
	backendTimeout  = 30 * time.Second
)

// Engine orchestrates one chat turn: session resolution, prompt assembly,
// the backend call, and history bookkeeping.
type Engine struct {
	store    *Store
	provider llm.Provider
	model    string
}

// NewEngine creates a chat engine backed by the given session store and
// LLM provider.
func NewEngine(store *Store, provider llm.Provider, model string) *Engine {
	return &Engine{
		store:    store,
		provider: provider,
		model:    model,
	}
}

// Respond handles one conversational turn. Backend failures never surface as
// errors: they are rendered into an apologetic assistant message and the turn
// is recorded as usual, so the conversation continues.
func (e *Engine) Respond(ctx context.Context, userMessage string, scan *ScanContext, sessionID string) *Reply {
	sessionID, history := e.store.GetOrCreate(sessionID)

	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: personaPrompt})
	if block := BuildScanContext(scan); block != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: block})
	}
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: llm.Role(msg.Role), Content: msg.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	// The session lock is not held here; concurrent turns on other sessions
	// proceed while this call is in flight.
	callCtx, cancel := context.WithTimeout(ctx, backendTimeout)
	defer cancel()

	var responseText string
	resp, err := e.provider.Complete(callCtx, llm.CompletionRequest{
		Model:       e.model,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
		TopP:        chatTopP,
	})
	if err != nil {
		log.Printf("chat backend error (session %s): %v", sessionID, err)
		responseText = failureReply(err)
	} else {
		responseText = resp.Content
	}

	e.store.AppendTurn(sessionID,
		Message{Role: RoleUser, Content: userMessage},
		Message{Role: RoleAssistant, Content: responseText},
	)

	return &Reply{
		Response:    responseText,
		SessionID:   sessionID,
		Suggestions: Suggestions(scan),
	}
}

// failureReply converts a backend error into user-facing assistant content.
func failureReply(err error) string {
	return fmt.Sprintf(
		"I apologize, but I'm having trouble connecting to my AI brain right now. Error: %v\n\n%s",
		err, safetyReminder,
	)
}
