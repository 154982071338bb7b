// Package store holds the catalog browser's session state.
//
// The Store owns a single State value. Every mutation builds a new State
// with a higher Version and swaps it in, so a *State returned by Snapshot
// is never modified afterwards and can be read without locking.
package store

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
)

// State is an immutable snapshot of the session. Callers must not modify
// the slices or maps it exposes.
type State struct {
	Films       []domain.Film
	InfoByTitle map[string]domain.ExternalInfo
	Selected    *domain.Film
	SearchQuery string
	SortKey     domain.SortKey
	Status      domain.CatalogStatus
	LoadErr     error
	Version     uint64
}

// Visible returns the films to display for the snapshot's query and sort key
func (s *State) Visible() []domain.Film {
	return catalog.VisibleFilms(s.Films, s.SearchQuery, s.SortKey, s.InfoByTitle)
}

// SelectedInfo returns the external info for the selected film, if any
// has been fetched.
func (s *State) SelectedInfo() (domain.ExternalInfo, bool) {
	if s.Selected == nil {
		return domain.ExternalInfo{}, false
	}
	info, ok := s.InfoByTitle[s.Selected.Title]
	return info, ok
}

// Info returns the external info fetched for title
func (s *State) Info(title string) (domain.ExternalInfo, bool) {
	info, ok := s.InfoByTitle[title]
	return info, ok
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	state  *State
	logger *slog.Logger
}

// New creates a store with an empty, idle session sorted by defaultSort
func New(defaultSort domain.SortKey, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state: &State{
			InfoByTitle: map[string]domain.ExternalInfo{},
			SortKey:     defaultSort,
			Status:      domain.StatusIdle,
		},
		logger: logger,
	}
}

// Snapshot returns the current state
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// update copies the current state, applies fn to the copy and publishes it.
// fn returning false discards the copy and leaves the version unchanged.
func (s *Store) update(fn func(next *State) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.state
	if !fn(&next) {
		return false
	}
	next.Version = s.state.Version + 1
	s.state = &next
	return true
}

// BeginLoad marks the catalog as loading. Films already loaded stay
// visible until the new list arrives.
func (s *Store) BeginLoad() {
	s.update(func(next *State) bool {
		next.Status = domain.StatusLoading
		next.LoadErr = nil
		return true
	})
}

// SetFilms replaces the catalog. Films sharing an EpisodeID with an earlier
// film are dropped. Fetched external info is kept, and the selection
// survives if its film is still present.
func (s *Store) SetFilms(films []domain.Film) {
	deduped := make([]domain.Film, 0, len(films))
	seen := make(map[int]string, len(films))
	for _, f := range films {
		if prev, dup := seen[f.EpisodeID]; dup {
			s.logger.Warn("dropping film with duplicate episode id",
				"episode_id", f.EpisodeID, "title", f.Title, "kept", prev)
			continue
		}
		seen[f.EpisodeID] = f.Title
		deduped = append(deduped, f)
	}

	s.update(func(next *State) bool {
		next.Films = deduped
		next.Status = domain.StatusLoaded
		next.LoadErr = nil
		if next.Selected != nil {
			next.Selected = findFilm(deduped, next.Selected.EpisodeID)
		}
		return true
	})
}

// FailLoad records a catalog load failure and empties the film list
func (s *Store) FailLoad(err error) {
	s.update(func(next *State) bool {
		next.Films = nil
		next.Selected = nil
		next.Status = domain.StatusFailed
		next.LoadErr = err
		return true
	})
}

// PutExternalInfo stores info under title. Entries for other titles are
// untouched.
func (s *Store) PutExternalInfo(title string, info domain.ExternalInfo) {
	s.update(func(next *State) bool {
		infoByTitle := maps.Clone(next.InfoByTitle)
		if infoByTitle == nil {
			infoByTitle = make(map[string]domain.ExternalInfo, 1)
		}
		infoByTitle[title] = info
		next.InfoByTitle = infoByTitle
		return true
	})
}

// SelectFilm selects the film with episodeID. It returns false, leaving
// the state unchanged, when no such film is loaded. Reselecting the
// current film does not bump the version.
func (s *Store) SelectFilm(episodeID int) bool {
	found := false
	s.update(func(next *State) bool {
		film := findFilm(next.Films, episodeID)
		if film == nil {
			return false
		}
		found = true
		if next.Selected != nil && *next.Selected == *film {
			return false
		}
		next.Selected = film
		return true
	})
	return found
}

// ClearSelection deselects the current film
func (s *Store) ClearSelection() {
	s.update(func(next *State) bool {
		if next.Selected == nil {
			return false
		}
		next.Selected = nil
		return true
	})
}

// SetSearchQuery sets the title filter. The query is stored verbatim.
func (s *Store) SetSearchQuery(query string) {
	s.update(func(next *State) bool {
		if next.SearchQuery == query {
			return false
		}
		next.SearchQuery = query
		return true
	})
}

// SetSortKey sets the ordering of the visible films
func (s *Store) SetSortKey(key domain.SortKey) {
	s.update(func(next *State) bool {
		if next.SortKey == key {
			return false
		}
		next.SortKey = key
		return true
	})
}

// findFilm returns a copy of the film with episodeID, or nil
func findFilm(films []domain.Film, episodeID int) *domain.Film {
	for i := range films {
		if films[i].EpisodeID == episodeID {
			f := films[i]
			return &f
		}
	}
	return nil
}
