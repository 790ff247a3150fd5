package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neuroscanhq/neuroscan/internal/chat"
	"github.com/neuroscanhq/neuroscan/internal/knowledge"
)

// handleLookupTumorInfo returns the reference entry for a tumor type.
func (s *Server) handleLookupTumorInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tumorType, err := request.RequireString("tumor_type")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: tumor_type"), nil
	}

	entry, ok := knowledge.Lookup(tumorType)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown tumor type %q. Known types: glioma, meningioma, pituitary, normal.",
			tumorType,
		)), nil
	}

	return mcp.NewToolResultText(formatEntry(entry)), nil
}

// handleSearchKnowledge performs semantic search over the knowledge base.
func (s *Server) handleSearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.index == nil {
		return mcp.NewToolResultError("Semantic search is not configured. Set an embedding provider in the server config."), nil
	}

	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	hits, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(hits) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(hits)))
	for i, h := range hits {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Title: %s\n", h.Title))
		sb.WriteString(fmt.Sprintf("Kind: %s\n", h.Kind))
		sb.WriteString(fmt.Sprintf("Similarity: %.1f%%\n\n", h.Similarity*100))
		sb.WriteString(h.Content)
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleAskAssistant runs one conversational turn through the chat engine.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.engine == nil {
		return mcp.NewToolResultError("The assistant is not configured. Set an LLM provider in the server config."), nil
	}

	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	var scan *chat.ScanContext
	if prediction := request.GetString("prediction", ""); prediction != "" {
		scan = &chat.ScanContext{
			Prediction: prediction,
			Confidence: request.GetFloat("confidence", 0),
		}
	}

	reply := s.engine.Respond(ctx, message, scan, request.GetString("session_id", ""))

	var sb strings.Builder
	sb.WriteString(reply.Response)
	sb.WriteString(fmt.Sprintf("\n\nSession: %s\n", reply.SessionID))
	if len(reply.Suggestions) > 0 {
		sb.WriteString("Suggested follow-ups:\n")
		for _, q := range reply.Suggestions {
			sb.WriteString("- " + q + "\n")
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// formatEntry renders a knowledge entry as readable text for agent consumption.
func formatEntry(e *knowledge.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", e.Name))
	sb.WriteString(e.Description)
	sb.WriteString("\n")

	writeList := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n" + heading + ":\n")
		for _, item := range items {
			sb.WriteString("- " + item + "\n")
		}
	}
	writeList("Types", e.Types)
	writeList("Symptoms", e.Symptoms)
	writeList("Risk factors", e.RiskFactors)
	writeList("Treatment options", e.TreatmentOptions)

	if e.Prognosis != "" {
		sb.WriteString("\nPrognosis: " + e.Prognosis + "\n")
	}
	if e.Prevalence != "" {
		sb.WriteString("Prevalence: " + e.Prevalence + "\n")
	}
	if e.TypicalAge != "" {
		sb.WriteString("Typical age: " + e.TypicalAge + "\n")
	}
	if e.Severity != "" {
		sb.WriteString("Severity: " + e.Severity + "\n")
	}

	return sb.String()
}
