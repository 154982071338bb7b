package components

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
)

func TestWordWrap(t *testing.T) {
	got := wordWrap("It is a period of civil war", 10)
	for _, line := range strings.Split(got, "\n") {
		if len([]rune(line)) > 10 {
			t.Errorf("line %q exceeds width 10", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "It is a period of civil war" {
		t.Errorf("wordWrap lost words: %q", got)
	}
}

func TestRenderCrawlReflowsParagraphs(t *testing.T) {
	crawl := "It is a period of civil war.\nRebel spaceships, striking\nfrom a hidden base.\n\nDuring the battle, Rebel\nspies managed to steal"

	got := renderCrawl(crawl, 80)
	paragraphs := strings.Split(got, "\n\n")
	if len(paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %q", len(paragraphs), got)
	}
	if !strings.Contains(paragraphs[0], "civil war. Rebel spaceships, striking from a hidden base.") {
		t.Errorf("first paragraph not reflowed: %q", paragraphs[0])
	}
	if renderCrawl("  \n ", 80) != "" {
		t.Error("blank crawl should render nothing")
	}
}

func TestFilmListKeepsCursorOnFilm(t *testing.T) {
	films := []domain.Film{
		{Title: "The Phantom Menace", EpisodeID: 1},
		{Title: "A New Hope", EpisodeID: 4},
		{Title: "Return of the Jedi", EpisodeID: 6},
	}

	l := NewFilmList()
	l.SetSize(60, 20)
	l.SetFilms(films, map[string]rating.Score{}, len(films))
	if !l.SelectEpisode(4) {
		t.Fatal("SelectEpisode(4) = false")
	}

	reordered := []domain.Film{films[2], films[1], films[0]}
	l.SetFilms(reordered, map[string]rating.Score{}, len(films))
	if got := l.SelectedFilm(); got == nil || got.EpisodeID != 4 {
		t.Errorf("SelectedFilm() = %+v, want episode 4", got)
	}

	// Selected film filtered out: cursor is clamped
	l.SetFilms(films[:1], map[string]rating.Score{}, len(films))
	if got := l.SelectedFilm(); got == nil || got.EpisodeID != 1 {
		t.Errorf("SelectedFilm() = %+v, want episode 1", got)
	}

	l.SetFilms(nil, map[string]rating.Score{}, len(films))
	if l.SelectedFilm() != nil {
		t.Error("SelectedFilm() on empty list should be nil")
	}
}

func TestInspectorRatingsStates(t *testing.T) {
	film := &domain.Film{
		Title:       "A New Hope",
		EpisodeID:   4,
		ReleaseDate: time.Date(1977, 5, 25, 0, 0, 0, 0, time.UTC),
		Director:    "George Lucas",
	}
	info := domain.ExternalInfo{
		PosterURL: "https://example.com/hope.jpg",
		Ratings: []domain.ExternalRating{
			{Source: "Internet Movie Database", Value: "8.6/10"},
			{Source: "Rotten Tomatoes", Value: "94%"},
		},
	}

	tests := []struct {
		name   string
		status InfoStatus
		want   []string
	}{
		{"loaded", InfoLoaded, []string{"8.6/10", "94%", "★ 9.0", "hope.jpg"}},
		{"pending", InfoPending, []string{"Fetching...", "Poster loading..."}},
		{"missing", InfoMissing, []string{rating.NotAvailable, "No poster"}},
		{"disabled", InfoDisabled, []string{"no OMDb API key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewInspector()
			i.SetSize(80, 30)
			i.SetFilm(film, info, tt.status)

			view := i.View()
			for _, want := range append([]string{"A New Hope", "Episode IV", "1977-05-25"}, tt.want...) {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
		})
	}
}
