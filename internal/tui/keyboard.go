package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/reel/internal/domain"
)

const (
	statusDelay      = 2 * time.Second
	inspectorScrollN = 3
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Sort modal captures all keys while open
	if m.SortModal.IsVisible() {
		_, selection := m.SortModal.HandleKey(msg)
		if selection != nil {
			return m.applySort(*selection)
		}
		return m, nil
	}

	// Search bar captures printable keys while typing
	if m.FilmList.IsSearchTyping() {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.updateFilmList(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search) && !m.FilmList.IsSearching():
		cmd := m.FilmList.StartSearch()
		return m, cmd

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Store.Snapshot().SortKey)
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		if m.Store.Snapshot().Status == domain.StatusLoading {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, LoadCatalogCmd(m.Svc)

	case key.Matches(msg, Keys.ToggleInspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.OpenPoster):
		return m.openPoster()

	case key.Matches(msg, Keys.ScrollDown):
		m.Inspector.ScrollDown(inspectorScrollN)
		return m, nil

	case key.Matches(msg, Keys.ScrollUp):
		m.Inspector.ScrollUp(inspectorScrollN)
		return m, nil
	}

	return m.updateFilmList(msg)
}

// updateFilmList routes a message to the film list and publishes any
// query or cursor change to the store
func (m Model) updateFilmList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var changed bool
	m.FilmList, cmd, changed = m.FilmList.Update(msg)
	if changed {
		m.Store.SetSearchQuery(m.FilmList.Query())
	}
	m.syncFromStore()
	return m, cmd
}

func (m Model) openPoster() (tea.Model, tea.Cmd) {
	if m.Opener == nil {
		return m, nil
	}
	snap := m.Store.Snapshot()
	if snap.Selected == nil {
		return m, nil
	}
	info, ok := snap.SelectedInfo()
	if !ok || !info.HasPoster() {
		m.StatusMsg = "No poster for " + snap.Selected.Title
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusDelay)
	}
	return m, OpenPosterCmd(m.Opener, snap.Selected.Title, info.PosterURL)
}

func (m Model) applySort(sortKey domain.SortKey) (tea.Model, tea.Cmd) {
	m.Store.SetSortKey(sortKey)
	m.syncFromStore()
	m.StatusMsg = sortKey.Label()
	m.StatusIsErr = false
	return m, ClearStatusCmd(statusDelay)
}
