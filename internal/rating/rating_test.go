package rating

import (
	"testing"

	"github.com/mmcdole/reel/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"7.8/10", 7.8},
		{"58/100", 5.8},
		{"93%", 9.3},
		{"fresh", 0},
		{"  8/10  ", 8},
		{"10/10", 10},
		{"0/10", 0},
		{"100/100", 10},
		{"100%", 10},
		{"0%", 0},
		{" 93 %", 9.3},
		{"7.5/100", 0}, // decimal numerator is not a /100 encoding
		{"abc%", 0},
		{"", 0},
		{"7.8", 0},
		{"-5/10", 0},
		{"8/10/10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Normalize(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAverageEmpty(t *testing.T) {
	if got := Average(nil); got.Available {
		t.Errorf("Average(nil) = %v, want N/A", got)
	}
	if got := Average([]domain.ExternalRating{}); got.Available {
		t.Errorf("Average([]) = %v, want N/A", got)
	}
	if got := Average(nil).String(); got != NotAvailable {
		t.Errorf("Average(nil).String() = %q, want %q", got, NotAvailable)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings []domain.ExternalRating
		want    float64
	}{
		{
			name: "ten and hundred scales",
			ratings: []domain.ExternalRating{
				{Source: "A", Value: "8/10"},
				{Source: "B", Value: "80/100"},
			},
			want: 8.0,
		},
		{
			name: "all three encodings",
			ratings: []domain.ExternalRating{
				{Source: "Internet Movie Database", Value: "8.6/10"},
				{Source: "Rotten Tomatoes", Value: "93%"},
				{Source: "Metacritic", Value: "90/100"},
			},
			want: 9.0, // (8.6 + 9.3 + 9.0) / 3 = 8.966...
		},
		{
			name: "unknown format counts as zero",
			ratings: []domain.ExternalRating{
				{Source: "A", Value: "8/10"},
				{Source: "B", Value: "fresh"},
			},
			want: 4.0,
		},
		{
			name:    "single rating",
			ratings: []domain.ExternalRating{{Source: "A", Value: "6.5/10"}},
			want:    6.5,
		},
		{
			name: "rounds to one decimal",
			ratings: []domain.ExternalRating{
				{Source: "A", Value: "7/10"},
				{Source: "B", Value: "8/10"},
				{Source: "C", Value: "8/10"},
			},
			want: 7.7, // 7.666...
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Average(tt.ratings)
			if !got.Available {
				t.Fatalf("Average() unavailable, want %v", tt.want)
			}
			if !almostEqual(got.Value, tt.want) {
				t.Errorf("Average() = %v, want %v", got.Value, tt.want)
			}
		})
	}
}

func TestScoreString(t *testing.T) {
	if got := (Score{Value: 8, Available: true}).String(); got != "8.0" {
		t.Errorf("String() = %q, want 8.0", got)
	}
	if got := (Score{Value: 8, Available: false}).String(); got != "N/A" {
		t.Errorf("String() = %q, want N/A", got)
	}
}

func TestScoreOrdering(t *testing.T) {
	na := Score{}
	zero := Score{Value: 0, Available: true}
	high := Score{Value: 9, Available: true}

	if !na.Less(zero) {
		t.Error("N/A should rank below a numeric zero")
	}
	if zero.Less(na) {
		t.Error("numeric zero should not rank below N/A")
	}
	if na.Less(na) {
		t.Error("N/A should not rank below N/A")
	}
	if !zero.Less(high) || high.Less(zero) {
		t.Error("numeric scores should order by value")
	}
	if na.Compare(Score{}) != 0 || high.Compare(zero) != 1 || zero.Compare(high) != -1 {
		t.Error("Compare should follow Less")
	}
}

func TestForTitle(t *testing.T) {
	info := map[string]domain.ExternalInfo{
		"A New Hope": {Ratings: []domain.ExternalRating{{Source: "A", Value: "9/10"}}},
		"No Ratings": {PosterURL: "http://example.com/p.jpg"},
	}

	if got := ForTitle(info, "A New Hope"); !got.Available || got.Value != 9 {
		t.Errorf("ForTitle(A New Hope) = %v, want 9.0", got)
	}
	if got := ForTitle(info, "No Ratings"); got.Available {
		t.Errorf("ForTitle(No Ratings) = %v, want N/A", got)
	}
	if got := ForTitle(info, "Missing"); got.Available {
		t.Errorf("ForTitle(Missing) = %v, want N/A", got)
	}
	if got := ForTitle(nil, "Missing"); got.Available {
		t.Errorf("ForTitle(nil map) = %v, want N/A", got)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
