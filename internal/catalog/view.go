// Package catalog derives the visible, ordered subset of the film catalog
// from the current query state. Everything here is pure: no I/O, no
// mutation of inputs, safe to re-run on every keystroke.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
)

// VisibleFilms filters films by a case-insensitive title substring and
// orders the result by key. infoByTitle is only consulted for
// domain.SortByRating; missing entries rank as N/A, after every rated film.
//
// The returned slice is always freshly allocated.
func VisibleFilms(
	films []domain.Film,
	query string,
	key domain.SortKey,
	infoByTitle map[string]domain.ExternalInfo,
) []domain.Film {
	visible := Filter(films, query)
	Sort(visible, key, infoByTitle)
	return visible
}

// Filter returns the films whose title contains query, ignoring case.
// An empty query keeps every film. Input order is preserved.
func Filter(films []domain.Film, query string) []domain.Film {
	out := make([]domain.Film, 0, len(films))
	if query == "" {
		return append(out, films...)
	}

	needle := strings.ToLower(query)
	for _, f := range films {
		if strings.Contains(strings.ToLower(f.Title), needle) {
			out = append(out, f)
		}
	}
	return out
}

// Matches reports whether title passes the filter for query
func Matches(title, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// Sort orders films in place. The sort is stable, so films that compare
// equal keep their relative input order.
func Sort(films []domain.Film, key domain.SortKey, infoByTitle map[string]domain.ExternalInfo) {
	switch key {
	case domain.SortByYear:
		slices.SortStableFunc(films, func(a, b domain.Film) int {
			return a.ReleaseDate.Compare(b.ReleaseDate)
		})

	case domain.SortByRating:
		// Score once per title instead of once per comparison
		scores := make(map[string]rating.Score, len(films))
		for _, f := range films {
			if _, ok := scores[f.Title]; !ok {
				scores[f.Title] = rating.ForTitle(infoByTitle, f.Title)
			}
		}
		slices.SortStableFunc(films, func(a, b domain.Film) int {
			// Descending: higher score first, N/A last
			return scores[b.Title].Compare(scores[a.Title])
		})

	default: // domain.SortByEpisode
		slices.SortStableFunc(films, func(a, b domain.Film) int {
			return cmp.Compare(a.EpisodeID, b.EpisodeID)
		})
	}
}

// MatchSpan returns the rune range [start, end) of the first
// case-insensitive occurrence of query in title, for highlighting.
func MatchSpan(title, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	lowerTitle := strings.ToLower(title)
	idx := strings.Index(lowerTitle, strings.ToLower(query))
	if idx < 0 {
		return 0, 0, false
	}
	// Convert byte index to rune index
	start = len([]rune(lowerTitle[:idx]))
	end = start + len([]rune(strings.ToLower(query)))
	return start, end, true
}
