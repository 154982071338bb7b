package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/store"
)

type fakeCatalog struct {
	films []domain.Film
	err   error
}

func (f *fakeCatalog) ListFilms(ctx context.Context) ([]domain.Film, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.films, nil
}

// fakeInfo returns canned info per title and records peak concurrency
type fakeInfo struct {
	byTitle map[string]domain.ExternalInfo
	delay   time.Duration

	calls    atomic.Int32
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeInfo) Lookup(ctx context.Context, title string) (domain.ExternalInfo, error) {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return domain.ExternalInfo{}, ctx.Err()
		}
	}

	info, ok := f.byTitle[title]
	if !ok {
		return domain.ExternalInfo{}, fmt.Errorf("lookup %q: %w", title, domain.ErrInfoNotFound)
	}
	return info, nil
}

type recordingObserver struct {
	mu      sync.Mutex
	results []domain.InfoResult
}

func (o *recordingObserver) OnInfo(r domain.InfoResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = append(o.results, r)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func films() []domain.Film {
	return []domain.Film{
		{Title: "A New Hope", EpisodeID: 4},
		{Title: "The Phantom Menace", EpisodeID: 1},
		{Title: "Return of the Jedi", EpisodeID: 6},
	}
}

func rated(value string) domain.ExternalInfo {
	return domain.ExternalInfo{Ratings: []domain.ExternalRating{{Source: "Internet Movie Database", Value: value}}}
}

func TestLoadCatalog(t *testing.T) {
	st := store.New(domain.SortByEpisode, quietLogger())
	svc := NewCatalogService(&fakeCatalog{films: films()}, nil, st, 0, quietLogger())

	got, err := svc.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d films, want 3", len(got))
	}

	snap := st.Snapshot()
	if snap.Status != domain.StatusLoaded || len(snap.Films) != 3 {
		t.Errorf("store = %v with %d films", snap.Status, len(snap.Films))
	}
}

func TestLoadCatalogFailure(t *testing.T) {
	st := store.New(domain.SortByEpisode, quietLogger())
	loadErr := fmt.Errorf("swapi: %w", domain.ErrCatalogUnavailable)
	svc := NewCatalogService(&fakeCatalog{err: loadErr}, nil, st, 0, quietLogger())

	if _, err := svc.LoadCatalog(context.Background()); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("err = %v", err)
	}

	snap := st.Snapshot()
	if snap.Status != domain.StatusFailed || !errors.Is(snap.LoadErr, domain.ErrCatalogUnavailable) {
		t.Errorf("store = %v, %v", snap.Status, snap.LoadErr)
	}
}

func TestFetchInfo(t *testing.T) {
	info := &fakeInfo{byTitle: map[string]domain.ExternalInfo{"A New Hope": rated("8.6/10")}}
	svc := NewCatalogService(&fakeCatalog{}, info, store.New(0, nil), 0, quietLogger())

	got, ok := svc.FetchInfo(context.Background(), "A New Hope")
	if !ok || len(got.Ratings) != 1 {
		t.Errorf("FetchInfo = %+v, %v", got, ok)
	}

	if _, ok := svc.FetchInfo(context.Background(), "Unknown"); ok {
		t.Error("missing title reported ok")
	}
}

func TestFetchInfoDisabled(t *testing.T) {
	svc := NewCatalogService(&fakeCatalog{}, nil, store.New(0, nil), 0, quietLogger())
	if svc.InfoEnabled() {
		t.Error("InfoEnabled with nil provider")
	}
	if _, ok := svc.FetchInfo(context.Background(), "A New Hope"); ok {
		t.Error("lookup ran without a provider")
	}
}

func TestFetchAllInfo(t *testing.T) {
	info := &fakeInfo{byTitle: map[string]domain.ExternalInfo{
		"A New Hope":         rated("8.6/10"),
		"Return of the Jedi": rated("8.3/10"),
		// The Phantom Menace fails with not found
	}}
	st := store.New(domain.SortByRating, quietLogger())
	svc := NewCatalogService(&fakeCatalog{films: films()}, info, st, 2, quietLogger())

	if _, err := svc.LoadCatalog(context.Background()); err != nil {
		t.Fatal(err)
	}

	obs := &recordingObserver{}
	titles := []string{"A New Hope", "The Phantom Menace", "Return of the Jedi"}
	if err := svc.FetchAllInfo(context.Background(), titles, obs); err != nil {
		t.Fatalf("FetchAllInfo: %v", err)
	}

	if len(obs.results) != 3 {
		t.Fatalf("observer saw %d results, want 3", len(obs.results))
	}
	okByTitle := map[string]bool{}
	for _, r := range obs.results {
		okByTitle[r.Title] = r.OK
	}
	if !okByTitle["A New Hope"] || okByTitle["The Phantom Menace"] || !okByTitle["Return of the Jedi"] {
		t.Errorf("results = %v", okByTitle)
	}

	snap := st.Snapshot()
	if _, ok := snap.Info("The Phantom Menace"); ok {
		t.Error("failed lookup left an entry")
	}
	var got []string
	for _, f := range snap.Visible() {
		got = append(got, f.Title)
	}
	want := []string{"A New Hope", "Return of the Jedi", "The Phantom Menace"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("visible by rating = %v, want %v", got, want)
	}
}

func TestFetchAllInfoRespectsConcurrencyCap(t *testing.T) {
	byTitle := map[string]domain.ExternalInfo{}
	var titles []string
	for i := 0; i < 12; i++ {
		title := fmt.Sprintf("film-%02d", i)
		titles = append(titles, title)
		byTitle[title] = rated("7/10")
	}
	info := &fakeInfo{byTitle: byTitle, delay: 10 * time.Millisecond}
	st := store.New(0, quietLogger())
	svc := NewCatalogService(&fakeCatalog{}, info, st, 3, quietLogger())

	if err := svc.FetchAllInfo(context.Background(), titles, nil); err != nil {
		t.Fatal(err)
	}

	if peak := info.peak.Load(); peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
	if calls := info.calls.Load(); calls != 12 {
		t.Errorf("lookups = %d, want 12", calls)
	}

	keys := make([]string, 0, len(st.Snapshot().InfoByTitle))
	for k := range st.Snapshot().InfoByTitle {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if fmt.Sprint(keys) != fmt.Sprint(titles) {
		t.Errorf("stored titles = %v", keys)
	}
}

func TestFetchAllInfoCancelled(t *testing.T) {
	info := &fakeInfo{byTitle: map[string]domain.ExternalInfo{"A New Hope": rated("8/10")}, delay: time.Second}
	st := store.New(0, quietLogger())
	svc := NewCatalogService(&fakeCatalog{}, info, st, 1, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.FetchAllInfo(ctx, []string{"A New Hope"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(st.Snapshot().InfoByTitle) != 0 {
		t.Error("cancelled lookup wrote to the store")
	}
}
