package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neuroscanhq/neuroscan/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize neuroscan configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the LLM provider and classifier backend, and generates a .neuroscan.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
