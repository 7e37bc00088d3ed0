// Package crawl provides catalog crawling orchestration. It coordinates
// sitemap discovery, product page fetching, extraction, and aggregation
// into a single catalog result.
package crawl

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopcrawl/shopcrawl"
)

// DefaultConcurrency is the worker pool width used when none is set.
const DefaultConcurrency = 8

// Crawler orchestrates the crawling of a Shopify storefront.
// Sitemaps, Fetcher, and Extractor are required. Fallback, Fixer,
// Products, and Pacer are optional.
type Crawler struct {
	Sitemaps shopcrawl.SitemapService
	Fetcher  shopcrawl.Fetcher

	// Extractor is the primary extractor. When it fails for a page and
	// Fallback is set, the page is retried through Fallback before the
	// URL is counted as failed.
	Extractor shopcrawl.Extractor
	Fallback  shopcrawl.Extractor

	// Fixer patches fields the extractor left missing.
	Fixer shopcrawl.Fixer

	// Products, when set, receives every aggregated product.
	Products shopcrawl.ProductService

	// Pacer throttles request starts across the whole pool.
	Pacer *Pacer

	Concurrency int
}

// Result holds the outcome of a crawl operation. Products are ordered
// by completion, not by discovery. Failed counts URLs that never
// produced a product; StoreFailed counts extracted products the catalog
// store rejected.
type Result struct {
	Products    []shopcrawl.Product
	Failed      int
	StoreFailed int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	url string
	err error
}

// CrawlSite discovers every product URL under baseURL and runs each one
// through the fetch and extract pipeline. A failure on one URL never
// aborts the crawl; the URL is counted in Result.Failed and the pool
// moves on. The progress callback, if provided, receives events as
// crawling proceeds.
func (c *Crawler) CrawlSite(ctx context.Context, baseURL string, progress ProgressFunc) (*Result, error) {
	urls, err := c.discoverProductURLs(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	total := len(urls)
	if total == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return &Result{Products: []shopcrawl.Product{}}, nil
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	acc := NewAccumulator()
	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			u := u
			g.Go(func() error {
				if c.Pacer != nil {
					if err := c.Pacer.Wait(gctx); err != nil {
						resultCh <- crawlResult{url: u, err: err}
						return nil
					}
				}
				product, err := c.processURL(gctx, u)
				if err == nil {
					acc.Add(*product)
				}
				resultCh <- crawlResult{url: u, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed, failed int
	for result := range resultCh {
		completed++
		if result.err != nil {
			failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
			continue
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				URL:       result.url,
			})
		}
	}

	products := acc.Products()

	var storeFailed int
	if c.Products != nil {
		for i := range products {
			if err := c.Products.CreateProduct(ctx, &products[i]); err != nil {
				storeFailed++
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{Products: products, Failed: failed, StoreFailed: storeFailed}, nil
}

// discoverProductURLs resolves leaf sitemaps for baseURL and collects the
// deduplicated set of product URLs, preserving first-seen order. A failed
// or empty sitemap index falls back to reading the root sitemap itself as
// a leaf, and individual leaf failures are skipped.
func (c *Crawler) discoverProductURLs(ctx context.Context, baseURL string) ([]string, error) {
	leaves, err := c.Sitemaps.Sitemaps(ctx, baseURL)
	if err != nil {
		if shopcrawl.ErrorCode(err) == shopcrawl.EINVALID {
			return nil, err
		}
		leaves = nil
	}
	if len(leaves) == 0 {
		leaves = []string{rootSitemapURL(baseURL)}
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, leaf := range leaves {
		found, err := c.Sitemaps.ProductURLs(ctx, leaf)
		if err != nil {
			continue
		}
		for _, u := range found {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// processURL fetches one product page and extracts a product from it.
// A fetch failure is terminal for the URL; the page is never requested
// again within a run.
func (c *Crawler) processURL(ctx context.Context, url string) (*shopcrawl.Product, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	page := shopcrawl.Page{URL: url, HTML: html}

	product, err := c.Extractor.Extract(ctx, page)
	if err != nil && c.Fallback != nil {
		product, err = c.Fallback.Extract(ctx, page)
	}
	if err != nil {
		return nil, err
	}

	if c.Fixer != nil {
		c.Fixer.Fix(product, page)
	}

	product.ContentHash = ComputeHash(html)
	product.FetchedAt = time.Now().UTC()

	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// rootSitemapURL derives the conventional root sitemap location.
func rootSitemapURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/sitemap.xml"
}
