package tui

import (
	"time"

	"github.com/mmcdole/reel/internal/domain"
)

// Message types for the TUI

// CatalogLoadedMsg signals that the film catalog has been fetched and
// published to the store
type CatalogLoadedMsg struct {
	Films []domain.Film
}

// CatalogFailedMsg signals that the catalog could not be fetched
type CatalogFailedMsg struct {
	Err error
}

// InfoLoadedMsg carries external info for one film
type InfoLoadedMsg struct {
	Title string
	Info  domain.ExternalInfo
}

// InfoFailedMsg signals that no external info is available for a film
type InfoFailedMsg struct {
	Title string
}

// StatusMsg sets the footer status line
type StatusMsg struct {
	Text  string
	IsErr bool
}

// ClearStatusMsg signals to clear the status message
type ClearStatusMsg struct{}

// TickMsg is sent periodically for spinner animation
type TickMsg time.Time
