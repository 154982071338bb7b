package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/service"
)

const (
	catalogTimeout = 30 * time.Second
	// Covers waiting for a lookup slot as well as the request itself
	infoTimeout = 60 * time.Second
)

// Command factories for async operations

// LoadCatalogCmd fetches the film catalog
func LoadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		films, err := svc.LoadCatalog(ctx)
		if err != nil {
			return CatalogFailedMsg{Err: err}
		}
		return CatalogLoadedMsg{Films: films}
	}
}

// FetchInfoCmd looks up external info for a single title
func FetchInfoCmd(svc *service.CatalogService, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), infoTimeout)
		defer cancel()

		info, ok := svc.FetchInfo(ctx, title)
		if !ok {
			return InfoFailedMsg{Title: title}
		}
		return InfoLoadedMsg{Title: title, Info: info}
	}
}

// FetchInfoCmds starts one independent lookup per film. Results arrive in
// completion order.
func FetchInfoCmds(svc *service.CatalogService, films []domain.Film) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(films))
	for _, f := range films {
		cmds = append(cmds, FetchInfoCmd(svc, f.Title))
	}
	return tea.Batch(cmds...)
}

// OpenPosterCmd opens a poster URL in the external viewer
func OpenPosterCmd(opener URLOpener, title, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Text: "Could not open poster: " + err.Error(), IsErr: true}
		}
		return StatusMsg{Text: "Opened poster for " + title}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TickCmd returns a command that ticks for spinner animation
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
