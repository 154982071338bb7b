package catalog

import (
	"slices"
	"strings"
	"unicode"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/reel/internal/domain"
)

// Suggest returns up to limit titles that resemble query, for the
// "did you mean" line shown when a search has no results.
//
// Subsequence matches ("phntm" -> "The Phantom Menace") come first, ranked by
// sahilm/fuzzy. Titles with a word within typo distance of every query word
// ("phamtom" -> "The Phantom Menace") follow, ranked by total distance.
// Suggest never changes what VisibleFilms returns.
func Suggest(films []domain.Film, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 || len(films) == 0 {
		return nil
	}

	lowerTitles := make([]string, len(films))
	for i, f := range films {
		lowerTitles[i] = strings.ToLower(f.Title)
	}

	var out []string
	seen := make(map[int]bool)

	for _, match := range fuzzy.Find(query, lowerTitles) {
		if len(out) >= limit {
			return out
		}
		seen[match.Index] = true
		out = append(out, films[match.Index].Title)
	}

	type typoMatch struct {
		index    int
		distance int
	}
	var typos []typoMatch

	queryWords := words(query)
	for i, title := range lowerTitles {
		if seen[i] {
			continue
		}
		if d, ok := typoDistance(queryWords, words(title)); ok {
			typos = append(typos, typoMatch{index: i, distance: d})
		}
	}

	slices.SortStableFunc(typos, func(a, b typoMatch) int {
		return a.distance - b.distance
	})

	for _, m := range typos {
		if len(out) >= limit {
			break
		}
		out = append(out, films[m.index].Title)
	}

	return out
}

// typoDistance sums, over every query word, the distance to its closest
// title word. ok is false if any query word has no title word within its
// typo allowance.
func typoDistance(queryWords, titleWords []string) (int, bool) {
	if len(queryWords) == 0 || len(titleWords) == 0 {
		return 0, false
	}

	total := 0
	for _, q := range queryWords {
		best := -1
		for _, w := range titleWords {
			d := fuzzysearch.LevenshteinDistance(q, w)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > allowedTypos(len([]rune(q))) {
			return 0, false
		}
		total += best
	}
	return total, true
}

// allowedTypos returns the number of typos allowed based on word length:
// 1-3 chars = 0, 4-6 chars = 1, 7+ chars = 2
func allowedTypos(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 6:
		return 1
	default:
		return 2
	}
}

// words splits lowercase text on anything that is not a letter or digit
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
