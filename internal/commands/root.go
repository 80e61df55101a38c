// Package commands wires the spendo CLI: import, insights, lifecycle
// actions, stats, and the demo data set.
package commands

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendo-dev/spendo/internal/buildinfo"
	"github.com/spendo-dev/spendo/internal/config"
	"github.com/spendo-dev/spendo/internal/insights"
	"github.com/spendo-dev/spendo/internal/lifecycle"
	"github.com/spendo-dev/spendo/internal/logger"
	"github.com/spendo-dev/spendo/internal/storage"
	"github.com/spendo-dev/spendo/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "spendo",
		Short:   "Spending insights from bank statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to spendo.yaml (defaults built in when absent)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	open := func(ctx context.Context) (*app, error) {
		return openApp(ctx, configPath, verbose)
	}

	rootCmd.AddCommand(newImportCommand(open))
	rootCmd.AddCommand(newInsightsCommand(open))
	rootCmd.AddCommand(newAckCommand(open))
	rootCmd.AddCommand(newSnoozeCommand(open))
	rootCmd.AddCommand(newHideCommand(open))
	rootCmd.AddCommand(newStatsCommand(open))
	rootCmd.AddCommand(newDemoCommand(open))

	return rootCmd
}

// openAppFunc builds the shared application state for one command run.
type openAppFunc func(ctx context.Context) (*app, error)

// app bundles everything a subcommand needs: config, logger, the local
// key-value backend, the lifecycle store, the transaction cache, the record
// store, and the analysis engine.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	lifecycle *lifecycle.Store
	cache     *storage.TxnCache
	store     store.Store
	engine    *insights.Engine

	close func()
}

func openApp(ctx context.Context, configPath string, verbose bool) (*app, error) {
	log := logger.New(verbose)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	a := &app{
		cfg:       cfg,
		log:       log,
		lifecycle: lifecycle.NewStore(backend),
		cache:     storage.NewTxnCache(backend),
		close:     func() {},
	}

	if cfg.Firestore.Project != "" {
		client, err := firestore.NewClient(ctx, cfg.Firestore.Project)
		if err != nil {
			return nil, fmt.Errorf("connecting to firestore: %w", err)
		}
		a.store = store.NewFirestoreStore(client)
		a.close = func() { _ = client.Close() }
		log.Debug().Str("project", cfg.Firestore.Project).Msg("using firestore record store")
	} else {
		a.store = store.NewMemoryStore()
		log.Debug().Str("data_dir", cfg.DataDir).Msg("using local storage")
	}

	a.engine = insights.NewEngine(a.store, a.lifecycle, log, cfg.Thresholds, cfg.Insights)
	return a, nil
}
