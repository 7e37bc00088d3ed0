package goquery

import "github.com/shopcrawl/shopcrawl"

// Ensure Fixer implements shopcrawl.Fixer at compile time.
var _ shopcrawl.Fixer = (*Fixer)(nil)

// Fixer patches missing or clearly invalid fields on a semantically
// extracted product using deterministic scans of the page markup.
// Populated fields are never overwritten.
type Fixer struct {
	// StoreName is the vendor fallback applied when extraction left the
	// vendor empty.
	StoreName string

	// Converter, when set, is used to turn description HTML into markdown.
	Converter shopcrawl.Converter
}

// NewFixer creates a Fixer with the given vendor fallback.
func NewFixer(storeName string, converter shopcrawl.Converter) *Fixer {
	return &Fixer{StoreName: storeName, Converter: converter}
}

// Fix patches the product in place. A page that cannot be parsed leaves
// the product untouched except for the vendor and variants defaults,
// which never depend on markup.
func (f *Fixer) Fix(product *shopcrawl.Product, page shopcrawl.Page) {
	if product.Vendor == "" {
		product.Vendor = f.StoreName
	}
	if product.Variants == nil {
		product.Variants = []shopcrawl.Variant{}
	}

	s, err := newScanner(page.HTML)
	if err != nil {
		return
	}

	if product.ID == "" || product.ID == "None" {
		if id := s.scanProductID(); id != "" {
			product.ID = id
			product.GID = shopcrawl.ProductGID(id)
		}
	}

	if product.PriceCents <= 0 {
		product.PriceCents = s.scanPriceCents()
	}

	if len(product.Images) == 0 {
		product.Images = s.scanImages()
	}

	if product.Description == "" {
		product.Description = s.scanDescription(f.Converter)
	}

	if len(product.Variants) == 0 {
		product.Variants = s.extractVariants()
	}
}
