package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Layout constants for the film list
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// ratingWidth fits "★ 10.0" and "N/A"
	ratingWidth = 6
)

// ListState is what the film list shows instead of rows
type ListState int

const (
	ListReady ListState = iota
	ListLoading
	ListFailed
)

// FilmList is the scrollable list of visible films with a search bar.
// It does not filter or sort: the owner computes the visible films and
// passes them in with SetFilms.
type FilmList struct {
	films  []domain.Film
	scores map[string]rating.Score
	total  int // films in the catalog, before filtering

	state   ListState
	loadErr error
	spinner string

	// Shown under "No matches"
	suggestions []string

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	// Search state
	searchActive bool
	searchInput  textinput.Model
}

// NewFilmList creates an empty film list
func NewFilmList() FilmList {
	ti := textinput.New()
	ti.Placeholder = "search titles..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return FilmList{
		searchInput: ti,
		scores:      map[string]rating.Score{},
		focused:     true,
	}
}

// SetFilms replaces the rows. The cursor stays on the film with the same
// episode ID when it is still visible, otherwise it is clamped.
func (l *FilmList) SetFilms(films []domain.Film, scores map[string]rating.Score, total int) {
	current := l.SelectedFilm()

	l.films = films
	l.scores = scores
	l.total = total

	if current != nil {
		for i, f := range films {
			if f.EpisodeID == current.EpisodeID {
				l.cursor = i
				break
			}
		}
	}
	if l.cursor >= len(films) {
		l.cursor = max(len(films)-1, 0)
	}
	l.ensureVisible()
}

// SetState switches between rows, loading spinner and load error
func (l *FilmList) SetState(state ListState, err error) {
	l.state = state
	l.loadErr = err
}

// SetSpinner sets the current spinner frame shown while loading
func (l *FilmList) SetSpinner(frame string) {
	l.spinner = frame
}

// SetSuggestions sets the "did you mean" titles for an empty result
func (l *FilmList) SetSuggestions(titles []string) {
	l.suggestions = titles
}

// SelectedFilm returns the film under the cursor
func (l FilmList) SelectedFilm() *domain.Film {
	if l.cursor < 0 || l.cursor >= len(l.films) {
		return nil
	}
	f := l.films[l.cursor]
	return &f
}

// SelectedIndex returns the cursor position
func (l FilmList) SelectedIndex() int {
	return l.cursor
}

// SelectEpisode moves the cursor to the film with episodeID, if visible
func (l *FilmList) SelectEpisode(episodeID int) bool {
	for i, f := range l.films {
		if f.EpisodeID == episodeID {
			l.cursor = i
			l.ensureVisible()
			return true
		}
	}
	return false
}

// ItemCount returns the number of visible films
func (l FilmList) ItemCount() int {
	return len(l.films)
}

// SetSize updates the component dimensions
func (l *FilmList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetFocused sets whether the list has keyboard focus
func (l *FilmList) SetFocused(focused bool) {
	l.focused = focused
}

// Search

// StartSearch shows and focuses the search bar
func (l *FilmList) StartSearch() tea.Cmd {
	l.searchActive = true
	l.recalcMaxVisible()
	return l.searchInput.Focus()
}

// IsSearching returns true if the search bar is shown
func (l FilmList) IsSearching() bool {
	return l.searchActive
}

// IsSearchTyping returns true if the search bar is shown and has focus
func (l FilmList) IsSearchTyping() bool {
	return l.searchActive && l.searchInput.Focused()
}

// Query returns the current search text
func (l FilmList) Query() string {
	return l.searchInput.Value()
}

// SetQuery sets the search text without focusing the bar
func (l *FilmList) SetQuery(query string) {
	l.searchInput.SetValue(query)
	if query != "" {
		l.searchActive = true
		l.recalcMaxVisible()
	}
}

// ClearSearch hides the search bar and empties the query
func (l *FilmList) ClearSearch() {
	l.searchActive = false
	l.searchInput.SetValue("")
	l.searchInput.Blur()
	l.recalcMaxVisible()
}

// Update handles keys. queryChanged reports whether the search text
// changed, so the owner can recompute the visible films.
func (l FilmList) Update(msg tea.Msg) (FilmList, tea.Cmd, bool) {
	if !l.focused {
		return l, nil, false
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	// Typing into the search bar
	if l.IsSearchTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, FilmListKeys.Escape):
				changed := l.Query() != ""
				l.ClearSearch()
				return l, nil, changed
			case key.Matches(keyMsg, FilmListKeys.Enter):
				// Accept query, blur input to allow navigation
				l.searchInput.Blur()
				return l, nil, false
			case keyMsg.Type == tea.KeyBackspace && l.Query() == "":
				l.ClearSearch()
				return l, nil, false
			}
		}

		before := l.Query()
		var cmd tea.Cmd
		l.searchInput, cmd = l.searchInput.Update(msg)
		changed := l.Query() != before
		if changed {
			l.cursor = 0
			l.offset = 0
		}
		return l, cmd, changed
	}

	if !isKey {
		return l, nil, false
	}

	// Search shown but blurred: navigating the results
	if l.searchActive {
		switch {
		case key.Matches(keyMsg, FilmListKeys.Escape):
			changed := l.Query() != ""
			l.ClearSearch()
			return l, nil, changed
		case key.Matches(keyMsg, FilmListKeys.Search):
			return l, l.searchInput.Focus(), false
		}
	}

	count := len(l.films)
	if count == 0 {
		return l, nil, false
	}

	switch {
	case key.Matches(keyMsg, FilmListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(keyMsg, FilmListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(keyMsg, FilmListKeys.Home):
		l.cursor = 0
	case key.Matches(keyMsg, FilmListKeys.End):
		l.cursor = count - 1
	case key.Matches(keyMsg, FilmListKeys.HalfDown):
		l.cursor = min(l.cursor+max(l.maxVisible/2, 1), count-1)
	case key.Matches(keyMsg, FilmListKeys.HalfUp):
		l.cursor = max(l.cursor-max(l.maxVisible/2, 1), 0)
	}
	l.ensureVisible()

	return l, nil, false
}

// View renders the component
func (l FilmList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}

	// Subtract frame (border) size so total rendered size equals l.width x l.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(l.width-frameW, 0)).
		Height(max(l.height-frameH, 0)).
		Render(l.renderContent())
}

// Internal methods

func (l *FilmList) recalcMaxVisible() {
	// Interior height minus title line and scroll indicators
	l.maxVisible = l.height - BorderHeight - ScrollIndicatorLines - 1
	// Reserve space for search bar when active
	if l.searchActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *FilmList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

// Rendering

func (l FilmList) renderContent() string {
	itemWidth := max(l.width-BorderWidth, 10)

	titleLine := styles.AccentStyle.Render(styles.Truncate("Films", itemWidth))

	switch l.state {
	case ListLoading:
		if len(l.films) == 0 {
			loadingLine := styles.DimStyle.Render(l.spinner + " Loading films...")
			return titleLine + "\n \n" + loadingLine + "\n "
		}
	case ListFailed:
		lines := []string{
			titleLine,
			" ",
			styles.ErrorStyle.Render("Could not load films"),
		}
		if l.loadErr != nil {
			lines = append(lines, styles.DimStyle.Render(wordWrap(l.loadErr.Error(), itemWidth-2)))
		}
		lines = append(lines, " ", styles.DimStyle.Render("Press r to retry"))
		return strings.Join(lines, "\n")
	}

	count := len(l.films)
	if count == 0 {
		content := titleLine + "\n \n" + l.renderEmpty(itemWidth)
		if l.searchActive {
			content += "\n" + l.renderSearchBar()
		}
		return content
	}

	end := min(l.offset+l.maxVisible, count)

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderFilm(l.films[i], i == l.cursor, itemWidth))
	}

	// ALWAYS reserve space for header (even if empty) to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}

	// ALWAYS reserve space for footer (even if empty)
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer

	if l.searchActive {
		content += "\n" + l.renderSearchBar()
	}

	return content
}

func (l FilmList) renderEmpty(width int) string {
	if l.Query() == "" {
		return styles.DimStyle.Render("No films")
	}

	msg := styles.DimStyle.Render("No matches")
	if len(l.suggestions) > 0 {
		hint := "Did you mean " + strings.Join(l.suggestions, ", ") + "?"
		msg += "\n" + styles.SubtitleStyle.Render(wordWrap(hint, width-2))
	}
	return msg
}

func (l FilmList) renderFilm(film domain.Film, selected bool, width int) string {
	code := fmt.Sprintf("%-4s", film.Numeral())
	codeFg := styles.CrawlYellow

	score := l.scores[film.Title]
	ratingText := fmt.Sprintf("%*s", ratingWidth, rating.NotAvailable)
	if score.Available {
		ratingText = fmt.Sprintf("%*s", ratingWidth, "★ "+score.String())
	}
	ratingFg := styles.RatingColor(score)

	// Available space: code(4) + spaces(2) + rating + margins(2)
	availableForTitle := max(width-4-2-ratingWidth-2, 5)

	title := film.Title
	if film.Year() > 0 {
		title = fmt.Sprintf("%s (%d)", film.Title, film.Year())
	}
	title = styles.Pad(styles.Truncate(title, availableForTitle), availableForTitle)

	parts := []styles.RowPart{{Text: code, Foreground: &codeFg}, {Text: " "}}
	parts = append(parts, l.titleParts(title, film.Title)...)
	parts = append(parts, styles.RowPart{Text: " " + ratingText, Foreground: &ratingFg})

	return styles.RenderListRow(parts, selected, width)
}

// titleParts splits the displayed title around the search match in
// filmTitle so the match can be highlighted
func (l FilmList) titleParts(display, filmTitle string) []styles.RowPart {
	start, end, ok := catalog.MatchSpan(filmTitle, l.Query())
	runes := []rune(display)
	if !ok || end > len(runes) {
		return []styles.RowPart{{Text: display}}
	}

	highlight := styles.CrawlYellow
	return []styles.RowPart{
		{Text: string(runes[:start])},
		{Text: string(runes[start:end]), Foreground: &highlight, Bold: true},
		{Text: string(runes[end:])},
	}
}

func (l FilmList) renderSearchBar() string {
	input := l.searchInput.View()

	// Show match count
	countStr := ""
	if l.Query() != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(l.films), l.total))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, input, countStr)
}
