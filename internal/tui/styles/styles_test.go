package styles

import (
	"testing"

	"github.com/mmcdole/reel/internal/rating"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"A New Hope", 20, "A New Hope"},
		{"The Empire Strikes Back", 10, "The Emp..."},
		{"Jedi", 3, "Jed"},
		{"Jedi", 0, ""},
		{"Épisode I", 6, "Épi..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := Pad("Sith", 6); got != "Sith  " {
		t.Errorf("Pad = %q", got)
	}
	if got := Pad("Revenge", 3); got != "Rev" {
		t.Errorf("Pad = %q", got)
	}
}

func TestRatingColor(t *testing.T) {
	tests := []struct {
		score rating.Score
		want  string
	}{
		{rating.Score{Value: 8.9, Available: true}, string(Green)},
		{rating.Score{Value: 7.0, Available: true}, string(Green)},
		{rating.Score{Value: 5.5, Available: true}, string(Orange)},
		{rating.Score{Value: 3.1, Available: true}, string(Red)},
		{rating.Score{}, string(DimGray)},
	}
	for _, tt := range tests {
		if got := string(RatingColor(tt.score)); got != tt.want {
			t.Errorf("RatingColor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
