package shopcrawl

import "context"

// Page is the raw fetched content for one product URL. It is owned
// exclusively by the worker that fetched it and discarded after extraction.
type Page struct {
	URL  string
	HTML string
}

// Extractor produces a product record from a fetched page.
//
// The primary implementation delegates to a semantic extraction backend;
// the structural implementation scans page markup deterministically and
// serves as the fallback when the primary produces no usable record.
type Extractor interface {
	Extract(ctx context.Context, page Page) (*Product, error)
}

// Fixer patches missing or clearly invalid fields on a semantically
// extracted product using deterministic scans of the page it came from.
// Fields that are already populated are left alone.
type Fixer interface {
	Fix(product *Product, page Page)
}
