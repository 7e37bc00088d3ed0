package shopcrawl

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Availability describes whether a product or variant can be purchased.
type Availability string

// Recognized availability states. Unrecognized or empty availability
// text always normalizes to InStock.
const (
	InStock    Availability = "in_stock"
	OutOfStock Availability = "out_of_stock"
	PreOrder   Availability = "pre_order"
)

// ParseAvailability maps free-form availability text to one of the three
// availability states. Matching is case-insensitive and total: any input,
// including the schema.org URI forms produced by the normalizer, maps to
// exactly one state, defaulting to InStock.
func ParseAvailability(text string) Availability {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(s, "out of stock"),
		strings.Contains(s, "outofstock"),
		strings.Contains(s, "unavailable"),
		s == string(OutOfStock):
		return OutOfStock
	case strings.Contains(s, "pre-order"),
		strings.Contains(s, "preorder"),
		s == string(PreOrder):
		return PreOrder
	default:
		return InStock
	}
}

// Review is a single customer review attached to a product.
type Review struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

// Variant is one purchasable variation of a product (e.g., "L / Black").
// A variant belongs to exactly one product and never exists independently.
type Variant struct {
	ID           string
	Name         string
	SKU          string
	PriceCents   int
	Availability Availability
	Image        string
	Options      map[string]string
}

// Product is the internal representation of one scraped product page.
// A product is created once per successfully processed URL, patched in
// place only by the fixup stage, and never mutated after aggregation.
type Product struct {
	ID           string
	GID          string
	Vendor       string
	Type         string
	PriceCents   int
	Name         string
	Description  string
	Availability Availability
	Tags         []string
	Images       []string
	Weight       string
	Dimensions   string
	TaxInfo      string
	Reviews      []Review
	URL          string
	Variants     []Variant

	// Set when the product is persisted to a catalog store.
	ContentHash string
	FetchedAt   time.Time
}

// Validate returns an error if the product violates domain invariants.
func (p *Product) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "product source URL required")
	}
	if p.Vendor == "" {
		return Errorf(EINVALID, "product vendor required")
	}
	if p.PriceCents < 0 {
		return Errorf(EINVALID, "product price must be non-negative")
	}
	return nil
}

var (
	priceRE = regexp.MustCompile(`\$?(\d+\.?\d*)`)
	slugRE  = regexp.MustCompile(`/products/([^/?]+)`)
)

// ParsePriceCents parses the first decimal-looking number out of displayed
// price text and converts it to integer cents. Missing or unparseable
// prices normalize to 0.
func ParsePriceCents(text string) int {
	m := priceRE.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(math.Round(f * 100))
}

// ProductIDFromURL derives a last-resort product identifier from the
// product slug in the URL path. Returns the empty string if the URL does
// not contain a /products/ segment.
func ProductIDFromURL(rawURL string) string {
	m := slugRE.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// ProductGID builds the Shopify global ID for a product identifier.
func ProductGID(id string) string {
	return "gid://shopify/Product/" + id
}

// NormalizeImageURL converts protocol-relative and scheme-less image URLs
// to absolute HTTPS URLs. Already-absolute URLs are returned unchanged.
func NormalizeImageURL(src string) string {
	switch {
	case strings.HasPrefix(src, "http"):
		return src
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	default:
		return "https://" + src
	}
}
