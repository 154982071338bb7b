package domain

import "context"

// CatalogProvider returns the full, fixed film catalog.
// No pagination, filtering or parameters.
type CatalogProvider interface {
	ListFilms(ctx context.Context) ([]Film, error)
}

// InfoProvider looks up poster and ratings for a single title.
// Failures (network, timeout, not found) are treated by callers as
// "no data for this title".
type InfoProvider interface {
	Lookup(ctx context.Context, title string) (ExternalInfo, error)
}

// InfoResult reports the outcome of one external-info lookup.
type InfoResult struct {
	Title string
	Info  ExternalInfo
	OK    bool // false when the lookup failed; Info is empty
}

// InfoObserver receives lookup results as they complete, in any order.
type InfoObserver interface {
	OnInfo(result InfoResult)
}

// NoOpObserver discards lookup results (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnInfo(InfoResult) {}
