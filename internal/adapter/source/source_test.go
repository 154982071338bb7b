package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/domain"
)

func TestNewFromConfigWithoutKey(t *testing.T) {
	cfg := adapter.DefaultConfig()

	sources, err := NewFromConfig(cfg, adapter.NullLogger())
	if err != nil {
		t.Fatal(err)
	}
	if sources.Catalog == nil {
		t.Error("catalog provider missing")
	}
	if sources.Info != nil {
		t.Error("info provider created without an API key")
	}
}

func TestNewFromConfigWithKey(t *testing.T) {
	cfg := adapter.DefaultConfig()
	cfg.OMDb.APIKey = "configured"

	sources, err := NewFromConfig(cfg, adapter.NullLogger())
	if err != nil {
		t.Fatal(err)
	}
	if sources.Info == nil {
		t.Error("info provider missing")
	}
}

func TestNewFromConfigRequiresCatalogURL(t *testing.T) {
	cfg := adapter.DefaultConfig()
	cfg.SWAPI.URL = ""

	if _, err := NewFromConfig(cfg, nil); err == nil {
		t.Error("expected error for empty catalog URL")
	}
}

func TestVerifyAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("apikey") {
		case "good":
			_, _ = io.WriteString(w, `{"Title":"Star Wars","Poster":"N/A","Response":"True"}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"Response":"False","Error":"Invalid API key!"}`)
		}
	}))
	defer srv.Close()

	cfg := adapter.DefaultConfig().OMDb
	cfg.URL = srv.URL
	ctx := context.Background()

	if err := VerifyAPIKey(ctx, &cfg, "good", adapter.NullLogger()); err != nil {
		t.Errorf("good key rejected: %v", err)
	}
	if err := VerifyAPIKey(ctx, &cfg, "bad", adapter.NullLogger()); err == nil {
		t.Error("bad key accepted")
	}
	if err := VerifyAPIKey(ctx, &cfg, "  ", adapter.NullLogger()); !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("blank key: err = %v", err)
	}
}
