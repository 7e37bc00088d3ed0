package shopcrawl

import "context"

// SitemapService discovers product page URLs from a site's sitemaps.
//
// Discovery failures are soft: callers treat an error the same as an
// empty result and continue with whatever the other sitemaps yield.
type SitemapService interface {
	// Sitemaps resolves the leaf sitemap documents to scan for a site.
	// It fetches {root}/sitemap.xml and, when that document is a sitemap
	// index, returns the child sitemap URLs it enumerates.
	Sitemaps(ctx context.Context, baseURL string) ([]string, error)

	// ProductURLs extracts candidate product page URLs from one leaf
	// sitemap, filtered by product-path markers (/products/, /product/).
	ProductURLs(ctx context.Context, sitemapURL string) ([]string, error)
}
