package main

import (
	"fmt"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Scraping %s\n", c.URL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d product URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Crawler.CrawlSite(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopcrawl.ErrorMessage(err))
		return err
	}

	products := make([]*shopcrawl.Product, len(result.Products))
	for i := range result.Products {
		products[i] = &result.Products[i]
	}
	catalog := shopcrawl.NormalizeCatalog(products)

	if err := deps.Writer.WriteCatalog(c.Output, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Output, err)
		return err
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d URLs\n", result.Failed)
	}
	if result.StoreFailed > 0 {
		fmt.Fprintf(deps.Stderr, "  %d products could not be stored in the catalog\n", result.StoreFailed)
	}
	fmt.Fprintf(deps.Stdout, "Output saved to %s\n", c.Output)
	fmt.Fprintf(deps.Stdout, "Scraping completed! Found %d products.\n", len(result.Products))

	return nil
}
