// Package service coordinates the catalog and external-info providers with
// the session store.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/store"
)

// DefaultMaxConcurrent bounds simultaneous external-info lookups
const DefaultMaxConcurrent = 4

// CatalogService loads the film catalog and fans out per-film info lookups
type CatalogService struct {
	catalog domain.CatalogProvider
	info    domain.InfoProvider // nil disables lookups
	store   *store.Store
	sem     *semaphore.Weighted
	logger  *slog.Logger
}

// NewCatalogService creates a catalog service. info may be nil, in which
// case every lookup reports no data.
func NewCatalogService(
	catalog domain.CatalogProvider,
	info domain.InfoProvider,
	st *store.Store,
	maxConcurrent int,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &CatalogService{
		catalog: catalog,
		info:    info,
		store:   st,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		logger:  logger,
	}
}

// Store returns the session store the service writes to
func (s *CatalogService) Store() *store.Store {
	return s.store
}

// InfoEnabled reports whether external-info lookups will be attempted
func (s *CatalogService) InfoEnabled() bool {
	return s.info != nil
}

// LoadCatalog fetches the film list and publishes it to the store. On
// failure the store is marked failed and the error is returned.
func (s *CatalogService) LoadCatalog(ctx context.Context) ([]domain.Film, error) {
	s.store.BeginLoad()

	films, err := s.catalog.ListFilms(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		s.store.FailLoad(err)
		return nil, err
	}

	s.store.SetFilms(films)
	loaded := s.store.Snapshot().Films
	s.logger.Info("loaded catalog", "count", len(loaded))
	return loaded, nil
}

// FetchInfo looks up external info for one title. Any failure is logged and
// reported as ok=false; it never surfaces as an error.
func (s *CatalogService) FetchInfo(ctx context.Context, title string) (domain.ExternalInfo, bool) {
	if s.info == nil {
		return domain.ExternalInfo{}, false
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.logger.Debug("info lookup cancelled", "title", title, "error", err)
		return domain.ExternalInfo{}, false
	}
	defer s.sem.Release(1)

	info, err := s.info.Lookup(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrInfoNotFound) {
			s.logger.Info("no external info", "title", title)
		} else {
			s.logger.Warn("failed to fetch external info", "title", title, "error", err)
		}
		return domain.ExternalInfo{}, false
	}

	s.logger.Debug("fetched external info", "title", title, "ratings", len(info.Ratings))
	return info, true
}

// FetchAllInfo looks up every title concurrently. Successful results are
// written to the store under their title. observer, if non-nil, is called
// once per title from the lookup goroutines, in completion order.
func (s *CatalogService) FetchAllInfo(ctx context.Context, titles []string, observer domain.InfoObserver) error {
	if observer == nil {
		observer = domain.NoOpObserver{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, title := range titles {
		title := title // per-iteration copy (module targets go 1.21)
		g.Go(func() error {
			info, ok := s.FetchInfo(gctx, title)
			if ok {
				s.store.PutExternalInfo(title, info)
			}
			observer.OnInfo(domain.InfoResult{Title: title, Info: info, OK: ok})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
