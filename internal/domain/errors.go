package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the catalog provider could not be reached
	ErrCatalogUnavailable = errors.New("film catalog is unavailable")

	// ErrInfoNotFound indicates the external-info provider has no entry for a title
	ErrInfoNotFound = errors.New("no external info for title")

	// ErrMissingAPIKey indicates the external-info credential was not configured
	ErrMissingAPIKey = errors.New("external info API key is not configured")

	// ErrUnknownSortKey indicates an unrecognized sort key name
	ErrUnknownSortKey = errors.New("unknown sort key")
)
