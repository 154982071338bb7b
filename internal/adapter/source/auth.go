package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/domain"
)

// probeTitle is looked up to check that an API key is accepted
const probeTitle = "A New Hope"

// VerifyAPIKey checks key against OMDb with a single lookup. A lookup that
// reaches OMDb but finds nothing still proves the key works.
func VerifyAPIKey(ctx context.Context, cfg *adapter.OMDbConfig, key string, logger *slog.Logger) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrMissingAPIKey
	}

	client := NewInfoClient(cfg, key, logger)
	_, err := client.Lookup(ctx, probeTitle)
	switch {
	case err == nil, errors.Is(err, domain.ErrInfoNotFound):
		return nil
	default:
		return fmt.Errorf("API key check failed: %w", err)
	}
}
