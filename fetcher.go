package shopcrawl

import "context"

// UserAgent identifies fetchers as a desktop browser. Many storefronts
// serve reduced markup, or none at all, to unknown agents.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves raw page content from URLs.
// Implementations may use browser automation for JavaScript-rendered
// storefront themes.
type Fetcher interface {
	// Fetch retrieves the page body for the URL.
	// The context controls timeout and cancellation.
	// Returns an EUNAVAILABLE error on timeout, network failure, or a
	// non-2xx response.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
