// Package render writes the visible film list for the non-interactive
// `reel list` command. Each format is a separate function; Films picks one
// from the --format flag value.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/rating"
	"github.com/mmcdole/reel/internal/store"
)

// Format constants matching --format flag values.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Formats lists the accepted --format values
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatCSV}
}

// FilmRow is one output line
type FilmRow struct {
	Episode  int      `json:"episode"`
	Title    string   `json:"title"`
	Released string   `json:"released"`
	Director string   `json:"director"`
	Rating   *float64 `json:"rating"` // nil when N/A
	Poster   string   `json:"poster,omitempty"`
}

// Rows builds output rows for the snapshot's visible films, in display order
func Rows(state *store.State) []FilmRow {
	visible := state.Visible()
	rows := make([]FilmRow, 0, len(visible))
	for _, f := range visible {
		rows = append(rows, newRow(f, state))
	}
	return rows
}

func newRow(f domain.Film, state *store.State) FilmRow {
	info, ok := state.Info(f.Title)
	row := FilmRow{
		Episode:  f.EpisodeID,
		Title:    f.Title,
		Released: f.FormattedReleaseDate(),
		Director: f.Director,
		Poster:   info.PosterURL,
	}
	if score := rating.AverageOf(info, ok); score.Available {
		v := score.Value
		row.Rating = &v
	}
	return row
}

func (r FilmRow) ratingString() string {
	if r.Rating == nil {
		return rating.NotAvailable
	}
	return rating.Score{Value: *r.Rating, Available: true}.String()
}

// Films writes rows to w in the specified format.
func Films(w io.Writer, rows []FilmRow, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatCSV:
		return renderCSV(w, rows)
	case FormatTable, "":
		return renderTable(w, rows)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderTable(w io.Writer, rows []FilmRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No films match.")
		return err
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"EP", "TITLE", "RELEASED", "DIRECTOR", "RATING"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	tw.SetAutoWrapText(false)

	for _, r := range rows {
		tw.Append([]string{
			strconv.Itoa(r.Episode),
			r.Title,
			r.Released,
			r.Director,
			r.ratingString(),
		})
	}
	tw.Render()
	return nil
}

func renderJSON(w io.Writer, rows []FilmRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderCSV(w io.Writer, rows []FilmRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"episode", "title", "released", "director", "rating", "poster"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Episode),
			r.Title,
			r.Released,
			r.Director,
			r.ratingString(),
			r.Poster,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
