package domain

import (
	"fmt"
	"time"
)

// Film is a single catalog entry. Films are created once per catalog load
// and never mutated; EpisodeID is the identity.
type Film struct {
	Title        string    // Display title
	EpisodeID    int       // Sequence number, unique within the catalog
	ReleaseDate  time.Time // Calendar date (zero if the provider sent garbage)
	Director     string
	Producer     string
	OpeningCrawl string // Synopsis
}

// Year returns the release year, or 0 when the date is unknown
func (f Film) Year() int {
	if f.ReleaseDate.IsZero() {
		return 0
	}
	return f.ReleaseDate.Year()
}

// FormattedReleaseDate returns the release date as YYYY-MM-DD
func (f Film) FormattedReleaseDate() string {
	if f.ReleaseDate.IsZero() {
		return "unknown"
	}
	return f.ReleaseDate.Format(time.DateOnly)
}

// EpisodeCode returns the roman-numeral episode label (e.g. "Episode IV")
func (f Film) EpisodeCode() string {
	if f.EpisodeID <= 0 {
		return ""
	}
	return "Episode " + f.Numeral()
}

// Numeral returns the episode number in roman numerals, or "-" when the
// film has no episode number
func (f Film) Numeral() string {
	if f.EpisodeID <= 0 {
		return "-"
	}
	return roman(f.EpisodeID)
}

// DisplayTitle returns "Title (YYYY-MM-DD)", the way the list renders a row
func (f Film) DisplayTitle() string {
	if f.ReleaseDate.IsZero() {
		return f.Title
	}
	return fmt.Sprintf("%s (%s)", f.Title, f.FormattedReleaseDate())
}

func roman(n int) string {
	if n >= 4000 {
		return fmt.Sprintf("%d", n)
	}
	numerals := []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	out := ""
	for _, r := range numerals {
		for n >= r.value {
			out += r.symbol
			n -= r.value
		}
	}
	return out
}

// ExternalRating is one critic/audience rating as reported by the
// external-info provider. Value is kept verbatim ("7.8/10", "58/100", "93%").
type ExternalRating struct {
	Source string
	Value  string
}

// ExternalInfo is the per-title data merged into the detail view.
type ExternalInfo struct {
	PosterURL string // Empty when the provider has no poster
	Ratings   []ExternalRating
}

// HasPoster reports whether a poster URL is available
func (i ExternalInfo) HasPoster() bool {
	return i.PosterURL != ""
}

// SortKey is the active ordering criterion for the catalog view
type SortKey int

const (
	SortByEpisode SortKey = iota // default
	SortByYear
	SortByRating
)

// SortKeys lists every sort key in menu order
func SortKeys() []SortKey {
	return []SortKey{SortByEpisode, SortByYear, SortByRating}
}

// String returns the config/CLI name of the sort key
func (k SortKey) String() string {
	switch k {
	case SortByEpisode:
		return "episode"
	case SortByYear:
		return "year"
	case SortByRating:
		return "rating"
	default:
		return "unknown"
	}
}

// Label returns the menu label for the sort key
func (k SortKey) Label() string {
	switch k {
	case SortByEpisode:
		return "Sort by Episode"
	case SortByYear:
		return "Sort by Year"
	case SortByRating:
		return "Sort by Rating"
	default:
		return "Unknown"
	}
}

// ParseSortKey parses "episode", "year" or "rating". An empty string is
// the default key.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "episode":
		return SortByEpisode, nil
	case "year":
		return SortByYear, nil
	case "rating":
		return SortByRating, nil
	default:
		return SortByEpisode, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// CatalogStatus tracks the catalog load lifecycle
type CatalogStatus int

const (
	StatusIdle CatalogStatus = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

// String returns a human-readable representation of the status
func (s CatalogStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusLoaded:
		return "Loaded"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
