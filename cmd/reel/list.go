package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/render"
)

var (
	listSearch string
	listSort   string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the film catalog with average ratings",
	Long: `Print the visible films: those whose title contains --search
(case-insensitive), ordered by --sort. Ratings are fetched for the
visible films only. A film without ratings shows N/A and sorts last
by rating.`,
	Example: `  reel list
  reel list --sort rating
  reel list --search jedi --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(render.Formats(), listFormat) {
			return fmt.Errorf("unknown format %q (want %s)", listFormat, strings.Join(render.Formats(), ", "))
		}

		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close()

		sortKey := d.cfg.DefaultSortKey()
		if cmd.Flags().Changed("sort") {
			if sortKey, err = domain.ParseSortKey(listSort); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		if _, err := d.svc.LoadCatalog(ctx); err != nil {
			return err
		}

		st := d.svc.Store()
		st.SetSearchQuery(listSearch)
		st.SetSortKey(sortKey)

		visible := st.Snapshot().Visible()
		titles := make([]string, len(visible))
		for i, f := range visible {
			titles[i] = f.Title
		}

		var observer domain.InfoObserver = domain.NoOpObserver{}
		if d.svc.InfoEnabled() && term.IsTerminal(int(os.Stderr.Fd())) {
			progress := newProgressObserver(os.Stderr, len(titles))
			defer progress.Done()
			observer = progress
		}

		if err := d.svc.FetchAllInfo(ctx, titles, observer); err != nil {
			return err
		}

		return render.Films(cmd.OutOrStdout(), render.Rows(st.Snapshot()), listFormat)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "",
		"only films whose title contains this text")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", domain.SortByEpisode.String(),
		"sort order: episode|year|rating (default from ui.default_sort)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", render.FormatTable,
		"output format: "+strings.Join(render.Formats(), "|"))
	rootCmd.AddCommand(listCmd)
}

// progressObserver prints a single updating progress line. OnInfo is
// called from lookup goroutines.
type progressObserver struct {
	mu    sync.Mutex
	w     io.Writer
	done  int
	total int
}

func newProgressObserver(w io.Writer, total int) *progressObserver {
	return &progressObserver{w: w, total: total}
}

func (p *progressObserver) OnInfo(domain.InfoResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "\rFetching ratings %d/%d", p.done, p.total)
}

// Done clears the progress line
func (p *progressObserver) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done > 0 {
		fmt.Fprint(p.w, "\r\033[K")
	}
}
