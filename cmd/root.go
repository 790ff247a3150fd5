package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "neuroscan",
	Short: "Brain MRI classification API with a medical imaging assistant",
	Long: `NeuroScan serves a trained brain-MRI classifier over a REST API along
with NeuroBot, a conversational assistant that explains classification
results using a curated tumor knowledge base. It also exposes the
knowledge base to AI agents via MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".neuroscan.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
