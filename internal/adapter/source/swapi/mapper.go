package swapi

import (
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/reel/internal/domain"
)

// MapFilms converts SWAPI films to domain films, preserving response order.
// A release date that does not parse is left as the zero time.
func MapFilms(films []Film, logger *slog.Logger) []domain.Film {
	out := make([]domain.Film, 0, len(films))
	for _, f := range films {
		out = append(out, mapFilm(f, logger))
	}
	return out
}

func mapFilm(f Film, logger *slog.Logger) domain.Film {
	film := domain.Film{
		Title:        f.Title,
		EpisodeID:    f.EpisodeID,
		Director:     f.Director,
		Producer:     f.Producer,
		OpeningCrawl: normalizeCrawl(f.OpeningCrawl),
	}

	if f.ReleaseDate != "" {
		released, err := time.Parse(time.DateOnly, f.ReleaseDate)
		if err != nil {
			logger.Warn("unparseable release date", "title", f.Title, "release_date", f.ReleaseDate)
		} else {
			film.ReleaseDate = released
		}
	}

	return film
}

// normalizeCrawl turns the crawl's CRLF line breaks into plain newlines
func normalizeCrawl(crawl string) string {
	return strings.ReplaceAll(crawl, "\r\n", "\n")
}
