// Package rating converts heterogeneous external rating strings onto a
// common 0-10 scale and averages them.
package rating

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// NotAvailable is the rendering of a Score with no ratings behind it
const NotAvailable = "N/A"

var (
	outOfTen     = regexp.MustCompile(`^\d+(\.\d+)?/10$`) // IMDb, e.g. "7.8/10"
	outOfHundred = regexp.MustCompile(`^\d+/100$`)        // Metacritic, e.g. "58/100"
)

// Normalize maps a raw rating string to the 0-10 scale.
//
// Recognized encodings, checked in order after trimming:
//
//	"7.8/10" -> 7.8
//	"58/100" -> 5.8
//	"93%"    -> 9.3
//
// Anything else normalizes to 0. Unknown formats are folded into the
// average as zeros rather than excluded.
func Normalize(raw string) float64 {
	value := strings.TrimSpace(raw)

	switch {
	case outOfTen.MatchString(value):
		return numerator(value)
	case outOfHundred.MatchString(value):
		return numerator(value) / 10
	case strings.HasSuffix(value, "%"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(value, "%")), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n / 10
	default:
		return 0
	}
}

// numerator parses the part before "/". Only called on regexp-validated input.
func numerator(value string) float64 {
	num, _, _ := strings.Cut(value, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return n
}

// Score is an averaged rating. The zero value is "not available".
type Score struct {
	Value     float64 // 0-10, one decimal place
	Available bool
}

// String renders the score with one decimal, or "N/A"
func (s Score) String() string {
	if !s.Available {
		return NotAvailable
	}
	return strconv.FormatFloat(s.Value, 'f', 1, 64)
}

// Less reports whether s ranks below o. N/A ranks below every numeric score;
// two N/A scores are equal.
func (s Score) Less(o Score) bool {
	switch {
	case !s.Available && !o.Available:
		return false
	case !s.Available:
		return true
	case !o.Available:
		return false
	default:
		return s.Value < o.Value
	}
}

// Compare returns -1, 0 or +1 following Less
func (s Score) Compare(o Score) int {
	switch {
	case s.Less(o):
		return -1
	case o.Less(s):
		return 1
	default:
		return 0
	}
}

// Average returns the mean of the normalized ratings, rounded to one
// decimal. Nil or empty input yields an unavailable Score.
func Average(ratings []domain.ExternalRating) Score {
	if len(ratings) == 0 {
		return Score{}
	}

	var sum float64
	for _, r := range ratings {
		sum += Normalize(r.Value)
	}
	avg := sum / float64(len(ratings))

	return Score{Value: round1(avg), Available: true}
}

// AverageOf averages the ratings of a map lookup result. A missing entry
// (ok == false) is unavailable, same as an entry with no ratings.
func AverageOf(info domain.ExternalInfo, ok bool) Score {
	if !ok {
		return Score{}
	}
	return Average(info.Ratings)
}

// ForTitle looks up a title in the info map and averages its ratings
func ForTitle(infoByTitle map[string]domain.ExternalInfo, title string) Score {
	info, ok := infoByTitle[title]
	return AverageOf(info, ok)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
