package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// InfoStatus describes where a film's external info stands
type InfoStatus int

const (
	InfoPending  InfoStatus = iota // lookup in flight
	InfoLoaded                     // lookup succeeded
	InfoMissing                    // lookup failed or found nothing
	InfoDisabled                   // no API key configured
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays the merged detail for the selected film
type Inspector struct {
	film       *domain.Film
	info       domain.ExternalInfo
	infoStatus InfoStatus

	width      int
	height     int
	offset     int // scroll offset
	maxVisible int // max visible lines
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetFilm sets the film to display. The scroll position resets when the
// film changes.
func (i *Inspector) SetFilm(film *domain.Film, info domain.ExternalInfo, status InfoStatus) {
	if film == nil || i.film == nil || film.EpisodeID != i.film.EpisodeID {
		i.offset = 0
	}
	i.film = film
	i.info = info
	i.infoStatus = status
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Reserve space for border, scroll indicators, title and blank line
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators - 2
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
}

// HasFilm returns true if there is a film to display
func (i Inspector) HasFilm() bool {
	return i.film != nil
}

// ScrollDown scrolls the body by n lines
func (i *Inspector) ScrollDown(n int) {
	i.offset += n
}

// ScrollUp scrolls the body back by n lines
func (i *Inspector) ScrollUp(n int) {
	i.offset = max(i.offset-n, 0)
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder

	// Border takes 2 chars (1 each side), leave 1 char safety margin
	contentWidth := max(i.width-3, 10)
	content := i.renderInspector(contentWidth)

	titleLine := styles.AccentStyle.Render(styles.Truncate("Details", contentWidth))

	// Three-zone layout: header is fixed, body scrolls, footer is fixed
	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := max(i.maxVisible-len(headerLines)-len(footerLines), 1)

	// Clamp body scroll offset
	totalBodyLines := len(bodyLines)
	offset := min(i.offset, max(totalBodyLines-availableForBody, 0))

	end := min(offset+availableForBody, totalBodyLines)
	visibleBody := bodyLines[offset:end]

	// Scroll indicators for body only
	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < totalBodyLines {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if len(headerLines) > 0 {
		parts = append(parts, headerLines...)
	}
	parts = append(parts, up)
	parts = append(parts, visibleBody...)

	// Pad between body end and footer if body is shorter than available space
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}

	parts = append(parts, down)
	if len(footerLines) > 0 {
		parts = append(parts, footerLines...)
	}

	// Subtract frame (border) size so total rendered size equals i.width x i.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(i.width-frameW, 0)).
		Height(max(i.height-frameH, 0)).
		Render(strings.Join(parts, "\n"))
}

// renderInspector renders the inspector panel content as three zones
func (i Inspector) renderInspector(width int) inspectorContent {
	if i.film == nil {
		return inspectorContent{body: styles.DimStyle.Render("No film selected")}
	}
	return inspectorContent{
		header: i.renderHeader(width),
		body:   i.renderBody(width),
		footer: i.renderFooter(width),
	}
}

func (i Inspector) renderHeader(width int) string {
	f := i.film
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(f.Title, width)))
	b.WriteString("\n")

	// Meta line: Episode • Release date
	var metaParts []string
	if code := f.EpisodeCode(); code != "" {
		metaParts = append(metaParts, code)
	}
	metaParts = append(metaParts, f.FormattedReleaseDate())
	b.WriteString(styles.DimStyle.Render(strings.Join(metaParts, " · ")))
	b.WriteString("\n")

	score := rating.AverageOf(i.info, i.infoStatus == InfoLoaded)
	ratingLine := styles.RenderRating(score)
	if score.Available {
		ratingLine += styles.DimStyle.Render(" average")
	}
	b.WriteString(ratingLine)

	return b.String()
}

func (i Inspector) renderBody(width int) string {
	f := i.film
	bodyWidth := min(width-2, 80)
	var lines []string

	if f.Director != "" {
		lines = append(lines, labelled("Director", f.Director, bodyWidth))
	}
	if f.Producer != "" {
		lines = append(lines, labelled("Producer", f.Producer, bodyWidth))
	}

	lines = append(lines, "", styles.AccentStyle.Render("Ratings"))
	lines = append(lines, i.renderRatings(bodyWidth)...)

	if crawl := renderCrawl(f.OpeningCrawl, bodyWidth); crawl != "" {
		lines = append(lines, "", crawl)
	}

	return strings.Join(lines, "\n")
}

func (i Inspector) renderRatings(width int) []string {
	switch i.infoStatus {
	case InfoPending:
		return []string{styles.DimStyle.Render("Fetching...")}
	case InfoDisabled:
		return []string{styles.DimStyle.Render("Unavailable: no OMDb API key (run reel setup)")}
	case InfoMissing:
		return []string{styles.DimStyle.Render(rating.NotAvailable)}
	}

	if len(i.info.Ratings) == 0 {
		return []string{styles.DimStyle.Render("No ratings")}
	}

	sourceW := 0
	for _, r := range i.info.Ratings {
		sourceW = max(sourceW, len(r.Source))
	}
	sourceW = min(sourceW, max(width-10, 8))

	lines := make([]string, 0, len(i.info.Ratings))
	for _, r := range i.info.Ratings {
		normalized := rating.Normalize(r.Value)
		line := fmt.Sprintf("%s  %s",
			styles.SubtitleStyle.Render(styles.Pad(styles.Truncate(r.Source, sourceW), sourceW)),
			lipgloss.NewStyle().Foreground(styles.White).Render(r.Value),
		)
		line += styles.DimStyle.Render(fmt.Sprintf(" (%.1f)", normalized))
		lines = append(lines, line)
	}
	return lines
}

func (i Inspector) renderFooter(width int) string {
	separator := styles.DimStyle.Render(strings.Repeat("─", width))

	switch {
	case i.infoStatus == InfoLoaded && i.info.HasPoster():
		return separator + "\n" + styles.DimStyle.Render("Poster ") +
			styles.SubtitleStyle.Render(styles.Truncate(i.info.PosterURL, width-7))
	case i.infoStatus == InfoPending:
		return separator + "\n" + styles.DimStyle.Render("Poster loading...")
	default:
		return separator + "\n" + styles.DimStyle.Render("No poster")
	}
}

func labelled(label, value string, width int) string {
	prefix := label + ": "
	wrapped := wordWrap(value, max(width-len(prefix), 10))
	wrapped = strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", len(prefix)))
	return styles.DimStyle.Render(prefix) + styles.SubtitleStyle.Render(wrapped)
}

// renderCrawl reflows the opening crawl: the provider hard-wraps lines and
// separates paragraphs with blank lines
func renderCrawl(crawl string, width int) string {
	crawl = strings.TrimSpace(crawl)
	if crawl == "" {
		return ""
	}

	var paragraphs []string
	for _, p := range strings.Split(crawl, "\n\n") {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			paragraphs = append(paragraphs, styles.CrawlStyle.Render(wordWrap(p, width)))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// splitLines splits a string into lines, returning empty slice for empty string
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))

		if lineLen > 0 && lineLen+wordLen+1 > width {
			result.WriteString("\n")
			lineLen = 0
		}

		if lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
