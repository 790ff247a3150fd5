package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroscanhq/neuroscan/internal/chat"
	"github.com/neuroscanhq/neuroscan/internal/knowledge"
	mcpserver "github.com/neuroscanhq/neuroscan/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the tumor knowledge base and the NeuroBot assistant as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// All diagnostics go to stderr; stdout carries the MCP protocol.
		var index *knowledge.Index
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: search_knowledge disabled: %v\n", err)
		} else {
			index, err = knowledge.NewIndex(cmd.Context(), embedder)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: search_knowledge disabled: %v\n", err)
				index = nil
			}
		}

		var engine *chat.Engine
		llmProvider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ask_assistant disabled: %v\n", err)
		} else {
			store := chat.NewStore(
				cfg.Chat.MaxHistory,
				cfg.Chat.MaxSessions,
				time.Duration(cfg.Chat.SessionTTLMinutes)*time.Minute,
			)
			engine = chat.NewEngine(store, llmProvider, cfg.Model)
		}

		mcpserver.Version = Version

		fmt.Fprintln(os.Stderr, "neuroscan MCP server started on stdio")

		srv := mcpserver.NewServer(index, engine)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
