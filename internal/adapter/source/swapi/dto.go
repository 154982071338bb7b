package swapi

// FilmList is the response of GET /films/
type FilmList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Film  `json:"results"`
}

// Film is a single film resource. Only the fields the catalog uses are
// decoded.
type Film struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"` // YYYY-MM-DD
	URL          string `json:"url,omitempty"`
}
