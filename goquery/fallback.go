package goquery

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

// Ensure FallbackExtractor implements shopcrawl.Extractor at compile time.
var _ shopcrawl.Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor builds a product record purely from deterministic
// page-structure scans. It runs when semantic extraction produces no
// usable record, and uses the same selector families as the fixup stage.
type FallbackExtractor struct {
	// StoreName is the vendor assigned to every extracted product.
	StoreName string

	// Converter, when set, is used to turn description HTML into markdown.
	Converter shopcrawl.Converter
}

// NewFallbackExtractor creates a structural extractor with the given
// vendor fallback.
func NewFallbackExtractor(storeName string, converter shopcrawl.Converter) *FallbackExtractor {
	return &FallbackExtractor{StoreName: storeName, Converter: converter}
}

// Extract scans the page markup and assembles a product record. The
// last-resort identifier is the product slug from the URL path. Returns
// an EINTERNAL error only when the markup cannot be parsed at all.
func (e *FallbackExtractor) Extract(_ context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
	s, err := newScanner(page.HTML)
	if err != nil {
		return nil, err
	}

	product := &shopcrawl.Product{
		URL:          page.URL,
		Vendor:       e.StoreName,
		Availability: shopcrawl.InStock,
		Name:         s.scanName(),
		PriceCents:   s.scanPriceCents(),
		Images:       s.scanImages(),
		Description:  s.scanDescription(e.Converter),
		Tags:         []string{},
		Reviews:      []shopcrawl.Review{},
		Variants:     s.extractVariants(),
	}

	if id := shopcrawl.ProductIDFromURL(page.URL); id != "" {
		product.ID = id
		product.GID = shopcrawl.ProductGID(id)
	}

	return product, nil
}
