package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNumeral(t *testing.T) {
	tests := []struct {
		episode int
		want    string
	}{
		{0, "-"},
		{-1, "-"},
		{1, "I"},
		{4, "IV"},
		{6, "VI"},
		{9, "IX"},
		{14, "XIV"},
	}
	for _, tt := range tests {
		f := Film{EpisodeID: tt.episode}
		if got := f.Numeral(); got != tt.want {
			t.Errorf("Numeral(%d) = %q, want %q", tt.episode, got, tt.want)
		}
	}
}

func TestEpisodeCode(t *testing.T) {
	if got := (Film{EpisodeID: 5}).EpisodeCode(); got != "Episode V" {
		t.Errorf("EpisodeCode() = %q, want %q", got, "Episode V")
	}
	if got := (Film{}).EpisodeCode(); got != "" {
		t.Errorf("EpisodeCode() without episode = %q, want empty", got)
	}
}

func TestReleaseDateFormatting(t *testing.T) {
	f := Film{Title: "A New Hope", ReleaseDate: time.Date(1977, 5, 25, 0, 0, 0, 0, time.UTC)}
	if got := f.FormattedReleaseDate(); got != "1977-05-25" {
		t.Errorf("FormattedReleaseDate() = %q", got)
	}
	if got := f.DisplayTitle(); got != "A New Hope (1977-05-25)" {
		t.Errorf("DisplayTitle() = %q", got)
	}
	if got := f.Year(); got != 1977 {
		t.Errorf("Year() = %d", got)
	}

	unknown := Film{Title: "Untitled"}
	if got := unknown.FormattedReleaseDate(); got != "unknown" {
		t.Errorf("FormattedReleaseDate() = %q, want unknown", got)
	}
	if got := unknown.DisplayTitle(); got != "Untitled" {
		t.Errorf("DisplayTitle() = %q, want Untitled", got)
	}
	if got := unknown.Year(); got != 0 {
		t.Errorf("Year() = %d, want 0", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, key := range SortKeys() {
		got, err := ParseSortKey(key.String())
		if err != nil || got != key {
			t.Errorf("ParseSortKey(%q) = %v, %v", key.String(), got, err)
		}
	}

	if got, err := ParseSortKey(""); err != nil || got != SortByEpisode {
		t.Errorf("ParseSortKey(\"\") = %v, %v, want episode", got, err)
	}

	for _, bad := range []string{"Rating", "title", " year"} {
		if _, err := ParseSortKey(bad); !errors.Is(err, ErrUnknownSortKey) {
			t.Errorf("ParseSortKey(%q) error = %v, want ErrUnknownSortKey", bad, err)
		}
	}
}
