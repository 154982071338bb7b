package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/store"
	"github.com/mmcdole/reel/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

const (
	tickInterval   = 100 * time.Millisecond
	maxSuggestions = 3
)

// URLOpener opens a URL outside the terminal
type URLOpener interface {
	Open(url string) error
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Svc    *service.CatalogService
	Store  *store.Store
	Opener URLOpener // nil disables opening posters

	// UI Components
	FilmList  components.FilmList
	Inspector components.Inspector
	SortModal components.SortModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	SpinnerFrame  int
	ShowInspector bool

	// Lookups in flight, by title. A reload does not cancel lookups
	// already in flight.
	pending map[string]bool

	// Store version last rendered
	version uint64
}

// NewModel creates a new application model
func NewModel(svc *service.CatalogService, showInspector bool) Model {
	m := Model{
		State:         StateBrowsing,
		Svc:           svc,
		Store:         svc.Store(),
		FilmList:      components.NewFilmList(),
		Inspector:     components.NewInspector(),
		SortModal:     components.NewSortModal(),
		ShowInspector: showInspector,
		pending:       make(map[string]bool),
	}
	m.syncFromStore()
	return m
}

// Init starts the catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Svc),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.FilmList.SetSpinner(RenderSpinner(m.SpinnerFrame))
		// Picks up store changes made outside Update, such as a reload
		// entering the loading state
		if m.Store.Snapshot().Version != m.version {
			m.syncFromStore()
		}
		return m, TickCmd(tickInterval)

	case CatalogLoadedMsg:
		m.syncFromStore()
		return m, m.startLookups(msg.Films)

	case CatalogFailedMsg:
		m.syncFromStore()
		m.StatusMsg = "Could not load films"
		m.StatusIsErr = true
		return m, nil

	case InfoLoadedMsg:
		delete(m.pending, msg.Title)
		m.Store.PutExternalInfo(msg.Title, msg.Info)
		m.syncFromStore()
		return m, nil

	case InfoFailedMsg:
		delete(m.pending, msg.Title)
		m.syncFromStore()
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Text
		m.StatusIsErr = msg.IsErr
		return m, ClearStatusCmd(statusDelay)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	return m.updateFilmList(msg)
}

// startLookups issues one lookup per film that has no info yet and no
// lookup in flight
func (m *Model) startLookups(films []domain.Film) tea.Cmd {
	if !m.Svc.InfoEnabled() {
		return nil
	}

	snap := m.Store.Snapshot()
	var todo []domain.Film
	for _, f := range films {
		if m.pending[f.Title] {
			continue
		}
		if _, ok := snap.Info(f.Title); ok {
			continue
		}
		m.pending[f.Title] = true
		todo = append(todo, f)
	}
	m.syncFromStore()

	if len(todo) == 0 {
		return nil
	}
	return FetchInfoCmds(m.Svc, todo)
}

// syncFromStore pushes the current store snapshot into the components.
// The selected film follows the list cursor.
func (m *Model) syncFromStore() {
	snap := m.Store.Snapshot()
	visible := snap.Visible()

	scores := make(map[string]rating.Score, len(visible))
	for _, f := range visible {
		scores[f.Title] = rating.ForTitle(snap.InfoByTitle, f.Title)
	}
	m.FilmList.SetFilms(visible, scores, len(snap.Films))

	switch snap.Status {
	case domain.StatusLoading:
		m.FilmList.SetState(components.ListLoading, nil)
	case domain.StatusFailed:
		m.FilmList.SetState(components.ListFailed, snap.LoadErr)
	default:
		m.FilmList.SetState(components.ListReady, nil)
	}

	var suggestions []string
	if len(visible) == 0 && snap.SearchQuery != "" {
		suggestions = catalog.Suggest(snap.Films, snap.SearchQuery, maxSuggestions)
	}
	m.FilmList.SetSuggestions(suggestions)

	if film := m.FilmList.SelectedFilm(); film != nil {
		m.Store.SelectFilm(film.EpisodeID)
	} else {
		m.Store.ClearSelection()
	}

	snap = m.Store.Snapshot()
	m.version = snap.Version
	m.updateInspector(snap)
}

func (m *Model) updateInspector(snap *store.State) {
	if snap.Selected == nil {
		m.Inspector.SetFilm(nil, domain.ExternalInfo{}, components.InfoMissing)
		return
	}

	info, ok := snap.SelectedInfo()
	title := snap.Selected.Title
	status := components.InfoMissing
	switch {
	case ok:
		status = components.InfoLoaded
	case !m.Svc.InfoEnabled():
		status = components.InfoDisabled
	case m.pending[title]:
		status = components.InfoPending
	}
	m.Inspector.SetFilm(snap.Selected, info, status)
}

// PendingLookups returns the number of lookups in flight
func (m Model) PendingLookups() int {
	return len(m.pending)
}
