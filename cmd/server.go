package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/neuroscanhq/neuroscan/internal/chat"
	"github.com/neuroscanhq/neuroscan/internal/classifier"
	"github.com/neuroscanhq/neuroscan/internal/config"
	"github.com/neuroscanhq/neuroscan/internal/db"
	"github.com/neuroscanhq/neuroscan/internal/knowledge"
	"github.com/neuroscanhq/neuroscan/internal/predict"
	"github.com/neuroscanhq/neuroscan/internal/server"
	"github.com/neuroscanhq/neuroscan/internal/stats"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the NeuroScan API server",
	Long:  `Starts the NeuroScan REST API: scan classification, the NeuroBot assistant, the tumor knowledge base, and training statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverPort == 0 {
			serverPort = cfg.Port
		}

		// LLM provider backing the assistant.
		llmProvider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		// Open database.
		dbPath := filepath.Join(cfg.DataDir, "neuroscan.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		statsStore := stats.NewStore(database)

		// Classifier backend. Optional: without an endpoint the predict
		// endpoint reports the model as unavailable instead of failing here.
		var model classifier.Classifier
		var info *classifier.Info
		if cfg.Classifier.Endpoint != "" {
			model = classifier.NewRemote(cfg.Classifier.Endpoint, cfg.Classifier.ModelName)
			info = buildModelInfo(cmd.Context(), cfg, statsStore)
		} else {
			fmt.Fprintln(os.Stderr, "Warning: no classifier endpoint configured; /api/predict will report 503")
		}
		predictSvc := predict.NewService(model, info, cfg.Classifier.ImageSize, cfg.Classifier.PixelScale)

		// Semantic knowledge search. Optional: without an embedder the
		// search endpoint reports 503 and everything else still works.
		var index *knowledge.Index
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: semantic search disabled: %v\n", err)
		} else {
			index, err = knowledge.NewIndex(cmd.Context(), embedder)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: semantic search disabled: could not build index: %v\n", err)
				index = nil
			}
		}

		// Chat sessions and engine.
		chatStore := chat.NewStore(
			cfg.Chat.MaxHistory,
			cfg.Chat.MaxSessions,
			time.Duration(cfg.Chat.SessionTTLMinutes)*time.Minute,
		)
		engine := chat.NewEngine(chatStore, llmProvider, cfg.Model)

		// Periodic sweep of expired chat sessions.
		sweeper := cron.New()
		if _, err := sweeper.AddFunc("@every 5m", func() {
			if n := chatStore.Sweep(); n > 0 {
				fmt.Fprintf(os.Stderr, "swept %d expired chat session(s)\n", n)
			}
		}); err != nil {
			return fmt.Errorf("scheduling session sweep: %w", err)
		}
		sweeper.Start()
		defer sweeper.Stop()

		// Build the server and register all feature routes.
		srv := server.New(server.Config{
			Port:     serverPort,
			DataDir:  cfg.DataDir,
			AllowAll: true,
		})
		r := srv.Router()
		predict.RegisterRoutes(r, predictSvc)
		chat.RegisterRoutes(r, engine)
		knowledge.RegisterRoutes(r, index)
		stats.RegisterRoutes(r, statsStore)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "neuroscan server v%s starting on port %d\n", Version, serverPort)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", llmProvider.Name(), cfg.Model)
		if cfg.Classifier.Endpoint != "" {
			fmt.Fprintf(os.Stderr, "  Classifier: %s (model %s)\n", cfg.Classifier.Endpoint, cfg.Classifier.ModelName)
		}

		return srv.Start()
	},
}

// buildModelInfo assembles the model card for /api/model-info, folding in the
// latest imported training summary when one exists.
func buildModelInfo(ctx context.Context, cfg *config.Config, statsStore *stats.Store) *classifier.Info {
	info := &classifier.Info{
		Name:        "Brain Tumor Classification CNN",
		Type:        "Convolutional Neural Network",
		Description: fmt.Sprintf("Classifies brain MRI scans into %d categories: Glioma, Meningioma, Normal, and Pituitary.", len(classifier.Labels)),
		Params:      "served remotely",
		Stats: []classifier.Stat{
			{Label: "Input Size", Value: fmt.Sprintf("%dx%d", cfg.Classifier.ImageSize, cfg.Classifier.ImageSize)},
			{Label: "Classes", Value: fmt.Sprintf("%d", len(classifier.Labels))},
		},
	}

	run, _, err := statsStore.LatestRun(ctx)
	if err != nil {
		return info
	}
	info.Stats = append(info.Stats,
		classifier.Stat{Label: "Training Accuracy", Value: fmt.Sprintf("%.2f%%", run.Summary.MaxAccuracy)},
		classifier.Stat{Label: "Validation Accuracy", Value: fmt.Sprintf("%.2f%%", run.Summary.MaxValAccuracy)},
	)
	return info
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serverCmd)
}
