// Package omdb looks up posters and ratings on the Open Movie Database.
// Lookups are rate limited and successful ones are memoized for the
// lifetime of the client.
package omdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/mmcdole/reel/internal/domain"
)

const (
	defaultBaseURL = "https://www.omdbapi.com/"
	defaultTimeout = 10 * time.Second
	userAgent      = "Reel/1.0"
)

// Options configures a Client
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64 // <= 0 disables limiting
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

// Client implements domain.InfoProvider for OMDb
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *gocache.Cache
	logger     *slog.Logger
}

// NewClient creates a new OMDb client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = gocache.NoExpiration
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	limit := rate.Inf
	burst := 1
	if opts.RatePerSec > 0 {
		limit = rate.Limit(opts.RatePerSec)
		burst = max(int(opts.RatePerSec), 1)
	}

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		cache:   gocache.New(opts.CacheTTL, 10*time.Minute),
		logger:  opts.Logger,
	}
}

// Lookup returns poster and ratings for an exact title. A title OMDb does
// not know returns an error wrapping domain.ErrInfoNotFound.
func (c *Client) Lookup(ctx context.Context, title string) (domain.ExternalInfo, error) {
	if c.apiKey == "" {
		return domain.ExternalInfo{}, domain.ErrMissingAPIKey
	}

	cacheKey := strings.ToLower(strings.TrimSpace(title))
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(domain.ExternalInfo), nil
	}

	params := url.Values{}
	params.Set("t", title)

	var resp TitleResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return domain.ExternalInfo{}, errors.Wrapf(err, "lookup %q", title)
	}

	if !resp.found() {
		c.logger.Debug("omdb has no entry", "title", title, "reason", resp.Error)
		return domain.ExternalInfo{}, errors.Wrapf(domain.ErrInfoNotFound, "lookup %q: %s", title, resp.Error)
	}

	info := MapInfo(resp)
	c.cache.SetDefault(cacheKey, info)
	return info, nil
}

// get performs a single rate-limited GET. Failed lookups are not retried;
// the caller treats them as "no data".
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "wait for rate limiter")
	}

	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	// Log URL with API key redacted
	c.logger.Debug("omdb request", "url", c.redact(reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// Transport errors embed the request URL
		return errors.New(c.redact(err.Error()))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	c.logger.Debug("omdb response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		var apiErr TitleResponse
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Error != "" {
			return errors.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Error)
		}
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(c.apiKey), "REDACTED")
	return strings.ReplaceAll(s, c.apiKey, "REDACTED")
}
