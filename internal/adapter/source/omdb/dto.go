package omdb

// notAvailable is OMDb's placeholder for missing fields
const notAvailable = "N/A"

// TitleResponse is the response of GET /?t=<title>. Response is the
// string "True" or "False"; on "False" only Error is set.
type TitleResponse struct {
	Title    string   `json:"Title"`
	Year     string   `json:"Year"`
	Poster   string   `json:"Poster"`
	Ratings  []Rating `json:"Ratings"`
	IMDbID   string   `json:"imdbID"`
	Response string   `json:"Response"`
	Error    string   `json:"Error,omitempty"`
}

// Rating is one entry of the Ratings array, e.g.
// {"Source": "Rotten Tomatoes", "Value": "93%"}
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

func (r TitleResponse) found() bool {
	return r.Response == "True"
}
