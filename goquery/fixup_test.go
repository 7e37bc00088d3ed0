package goquery_test

import (
	"testing"

	"github.com/shopcrawl/shopcrawl"
	shopgoquery "github.com/shopcrawl/shopcrawl/goquery"
	"github.com/stretchr/testify/assert"
)

func TestFixer_Fix_FillsMissingFields(t *testing.T) {
	t.Parallel()

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{
		Name: "Wool Beanie",
		URL:  "https://shop.example.com/products/wool-beanie",
	}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: productPageHTML})

	assert.Equal(t, "Example Co", p.Vendor)
	assert.Equal(t, 15000, p.PriceCents)
	assert.Len(t, p.Images, 2)
	assert.Equal(t, "A warm beanie for cold days.", p.Description)
	assert.NotNil(t, p.Variants)
	assert.Empty(t, p.Variants)
}

func TestFixer_Fix_PreservesPopulatedFields(t *testing.T) {
	t.Parallel()

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{
		ID:          "7431351",
		GID:         "gid://shopify/Product/7431351",
		Vendor:      "Original Vendor",
		PriceCents:  4200,
		Description: "Original description.",
		Images:      []string{"https://cdn.shopify.com/original.jpg"},
		URL:         "https://shop.example.com/products/wool-beanie",
		Variants:    []shopcrawl.Variant{{ID: "41"}},
	}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: productPageHTML})

	assert.Equal(t, "7431351", p.ID)
	assert.Equal(t, "Original Vendor", p.Vendor)
	assert.Equal(t, 4200, p.PriceCents)
	assert.Equal(t, []string{"https://cdn.shopify.com/original.jpg"}, p.Images)
	assert.Equal(t, "Original description.", p.Description)
	assert.Len(t, p.Variants, 1)
}

func TestFixer_Fix_ProductIDFromDataAttribute(t *testing.T) {
	t.Parallel()

	html := `<html><body><form data-product-id="7431351"></form></body></html>`

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{URL: "https://shop.example.com/products/x"}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: html})

	assert.Equal(t, "7431351", p.ID)
	assert.Equal(t, "gid://shopify/Product/7431351", p.GID)
}

func TestFixer_Fix_ProductIDFromJSONLD(t *testing.T) {
	t.Parallel()

	html := `<html><head>
	  <script type="application/ld+json">
	    {"@context":"https://schema.org","@type":"Product","@id":"https://shop.example.com/products/7431351","name":"Wool Beanie"}
	  </script>
	</head><body></body></html>`

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{URL: "https://shop.example.com/products/x"}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: html})

	assert.Equal(t, "7431351", p.ID)
}

func TestFixer_Fix_IgnoresNonProductJSONLD(t *testing.T) {
	t.Parallel()

	html := `<html><head>
	  <script type="application/ld+json">
	    {"@type":"Organization","@id":"https://shop.example.com/about/42"}
	  </script>
	</head><body></body></html>`

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{URL: "https://shop.example.com/products/x"}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: html})

	assert.Empty(t, p.ID)
}

func TestFixer_Fix_PlaceholderID(t *testing.T) {
	t.Parallel()

	// Semantic backends sometimes return the literal string "None" for
	// missing identifiers; it must be treated as absent.
	html := `<html><body><div data-product-id="7431351"></div></body></html>`

	f := shopgoquery.NewFixer("Example Co", nil)
	p := &shopcrawl.Product{ID: "None", URL: "https://shop.example.com/products/x"}

	f.Fix(p, shopcrawl.Page{URL: p.URL, HTML: html})

	assert.Equal(t, "7431351", p.ID)
}
