package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source"
	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "Browse the Star Wars film catalog in the terminal",
	Long: `reel lists the Star Wars films from SWAPI and shows ratings and posters
from OMDb for the selected film.

Ratings need an OMDb API key. Get one at https://www.omdbapi.com/apikey.aspx
and store it with 'reel setup', or export REEL_OMDB_API_KEY.

Without a subcommand, reel starts the interactive browser.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser()
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deps is what every command needs: config, logger and the catalog service
type deps struct {
	cfg      *adapter.Config
	logger   *slog.Logger
	svc      *service.CatalogService
	closeLog func() error
}

func (d *deps) Close() {
	if err := d.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// loadSettings reads config and sets up the file logger
func loadSettings() (*adapter.Config, *slog.Logger, func() error, error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
		closeLog = func() error { return nil }
	}
	slog.SetDefault(logger)

	return cfg, logger, closeLog, nil
}

// buildDeps wires config, sources, store and service
func buildDeps() (*deps, error) {
	cfg, logger, closeLog, err := loadSettings()
	if err != nil {
		return nil, err
	}

	sources, err := source.NewFromConfig(cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to create sources: %w", err)
	}

	st := store.New(cfg.DefaultSortKey(), logger)
	svc := service.NewCatalogService(sources.Catalog, sources.Info, st, cfg.OMDb.MaxConcurrent, logger)

	return &deps{cfg: cfg, logger: logger, svc: svc, closeLog: closeLog}, nil
}
