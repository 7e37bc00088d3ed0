// Package http provides HTTP-based implementations of shopcrawl.Fetcher
// and shopcrawl.SitemapService for crawling storefronts over plain HTTP.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/shopcrawl/shopcrawl"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements shopcrawl.Fetcher at compile time.
var _ shopcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content from URLs using HTTP requests.
// It does not execute JavaScript; use rod.Fetcher for storefront themes
// that render product data client-side.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client used for requests. A client set this
// way keeps its own timeout; WithTimeout is ignored.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page body for the given URL.
// Timeouts, network errors, and non-2xx responses are reported as
// EUNAVAILABLE errors; the URL is never retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", shopcrawl.Errorf(shopcrawl.EINVALID, "invalid URL %q: %s", url, err)
	}
	req.Header.Set("User-Agent", shopcrawl.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "fetching %s: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "reading body for %s: %s", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
