package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroscanhq/neuroscan/internal/db"
	"github.com/neuroscanhq/neuroscan/internal/progress"
	"github.com/neuroscanhq/neuroscan/internal/stats"
)

var importRunName string

var importStatsCmd = &cobra.Command{
	Use:   "import-stats <history.json>",
	Short: "Import a training run's metric history",
	Long: `Imports the epoch-by-epoch metric history of a model training run from a
JSON file (the history dict exported by the training pipeline) into the
local database. The latest imported run backs the /api/stats endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading history file: %w", err)
		}

		var history stats.History
		if err := json.Unmarshal(data, &history); err != nil {
			return fmt.Errorf("parsing history file: %w", err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "neuroscan.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		name := importRunName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		reporter := progress.NewReporter()
		reporter.Start(len(history.Accuracy), "Importing epochs")
		run, err := stats.NewStore(database).ImportRun(cmd.Context(), name, &history, func(epoch int) {
			reporter.Update(epoch+1, fmt.Sprintf("epoch %d", epoch+1))
		})
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("importing run: %w", err)
		}

		fmt.Printf("Imported run %q (%d epochs, max val accuracy %.2f%%)\n",
			run.Name, run.Summary.Epochs, run.Summary.MaxValAccuracy)
		return nil
	},
}

func init() {
	importStatsCmd.Flags().StringVar(&importRunName, "name", "", "name for the imported run (default: file name)")
	rootCmd.AddCommand(importStatsCmd)
}
