package catalog

import (
	"slices"
	"testing"
)

func TestSuggestTypo(t *testing.T) {
	got := Suggest(sagaFilms(), "phamtom", 3)
	if len(got) == 0 || got[0] != "The Phantom Menace" {
		t.Fatalf("Suggest(phamtom) = %v, want The Phantom Menace first", got)
	}
}

func TestSuggestSubsequence(t *testing.T) {
	got := Suggest(sagaFilms(), "jdi", 3)
	if !slices.Contains(got, "Return of the Jedi") {
		t.Errorf("Suggest(jdi) = %v, want it to contain Return of the Jedi", got)
	}
}

func TestSuggestRespectsLimit(t *testing.T) {
	got := Suggest(sagaFilms(), "e", 2)
	if len(got) > 2 {
		t.Errorf("got %d suggestions, want at most 2", len(got))
	}
}

func TestSuggestNothing(t *testing.T) {
	for _, query := range []string{"", "   ", "xqzv"} {
		if got := Suggest(sagaFilms(), query, 3); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want none", query, got)
		}
	}
	if got := Suggest(nil, "jedi", 3); got != nil {
		t.Errorf("Suggest on empty catalog = %v, want nil", got)
	}
}
