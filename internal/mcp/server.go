// Package mcp exposes the neuroscan knowledge base and assistant over the
// Model Context Protocol so AI agents can use them as tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/neuroscanhq/neuroscan/internal/chat"
	"github.com/neuroscanhq/neuroscan/internal/knowledge"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes tumor knowledge tools. The search
// index and engine may be nil; the corresponding tools then report an error.
type Server struct {
	index  *knowledge.Index
	engine *chat.Engine
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(index *knowledge.Index, engine *chat.Engine) *Server {
	s := &Server{
		index:  index,
		engine: engine,
	}

	s.mcp = server.NewMCPServer(
		"neuroscan",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(lookupTumorInfoTool, s.handleLookupTumorInfo)
	s.mcp.AddTool(searchKnowledgeTool, s.handleSearchKnowledge)
	s.mcp.AddTool(askAssistantTool, s.handleAskAssistant)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
