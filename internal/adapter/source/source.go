package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source/omdb"
	"github.com/mmcdole/reel/internal/adapter/source/swapi"
	"github.com/mmcdole/reel/internal/domain"
)

// Sources bundles the two upstreams the catalog browser reads from.
// Info is nil when no OMDb API key is configured; every film then shows N/A.
type Sources struct {
	Catalog domain.CatalogProvider
	Info    domain.InfoProvider
}

// NewFromConfig creates the catalog and info providers from the
// application config
func NewFromConfig(cfg *adapter.Config, logger *slog.Logger) (*Sources, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.SWAPI.URL == "" {
		return nil, fmt.Errorf("catalog URL is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	sources := &Sources{
		Catalog: swapi.NewClient(cfg.SWAPI.URL, cfg.SWAPI.Timeout, logger.With("source", "swapi")),
	}

	if cfg.HasAPIKey() {
		sources.Info = NewInfoClient(&cfg.OMDb, cfg.OMDb.APIKey, logger)
	} else {
		logger.Warn("no OMDb API key configured, ratings and posters disabled")
	}

	return sources, nil
}

// NewInfoClient creates an OMDb client using key instead of the key in cfg
func NewInfoClient(cfg *adapter.OMDbConfig, key string, logger *slog.Logger) *omdb.Client {
	if logger == nil {
		logger = slog.Default()
	}
	return omdb.NewClient(omdb.Options{
		APIKey:     key,
		BaseURL:    cfg.URL,
		Timeout:    cfg.Timeout,
		RatePerSec: cfg.RatePerSec,
		CacheTTL:   cfg.CacheTTL,
		Logger:     logger.With("source", "omdb"),
	})
}
