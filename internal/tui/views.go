package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	layout := m.calculateColumnLayout(m.Width)

	content := m.FilmList.View()
	if layout.inspectorWidth > 0 {
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			content,
			m.Inspector.View(),
		)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderFooter(),
	)

	// Overlay sort modal if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	return view
}

// renderFooter renders a single-line footer: status, sort order, help hint
func (m Model) renderFooter() string {
	snap := m.Store.Snapshot()

	var left string
	switch {
	case snap.Status == domain.StatusLoading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading films...")
	case len(m.pending) > 0:
		status := fmt.Sprintf("Fetching ratings · %d left", len(m.pending))
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(status)
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	center := styles.AccentStyle.Render("s") + styles.DimStyle.Render(" "+snap.SortKey.Label())

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelp renders the help screen from the live key bindings
func (m Model) renderHelp() string {
	list := components.FilmListKeys
	sections := []helpSection{
		{"NAVIGATION", []key.Binding{list.Up, list.Down, list.Home, list.End, list.HalfUp, list.HalfDown}},
		{"SEARCH & VIEW", []key.Binding{Keys.Search, list.Escape, Keys.Sort, Keys.ToggleInspector, Keys.OpenPoster, Keys.ScrollDown, Keys.ScrollUp}},
		{"OTHER", []key.Binding{Keys.Refresh, Keys.Help, Keys.Quit}},
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ModalTitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(h.Key, 8)))
			b.WriteString(styles.HelpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press any key to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}
