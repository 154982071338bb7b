package omdb

import (
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// MapInfo converts an OMDb title response to domain external info.
// Rating values are kept raw; normalization happens at display time.
func MapInfo(r TitleResponse) domain.ExternalInfo {
	info := domain.ExternalInfo{}

	if poster := strings.TrimSpace(r.Poster); poster != "" && poster != notAvailable {
		info.PosterURL = poster
	}

	if len(r.Ratings) > 0 {
		info.Ratings = make([]domain.ExternalRating, 0, len(r.Ratings))
		for _, rt := range r.Ratings {
			info.Ratings = append(info.Ratings, domain.ExternalRating{
				Source: rt.Source,
				Value:  rt.Value,
			})
		}
	}

	return info
}
