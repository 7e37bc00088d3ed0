package shopcrawl_test

import (
	"testing"

	"github.com/shopcrawl/shopcrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProduct(t *testing.T) {
	t.Parallel()

	p := &shopcrawl.Product{
		ID:           "7431351",
		Vendor:       "Example Co",
		Type:         "Hats",
		PriceCents:   15000,
		Name:         "Wool Beanie",
		Description:  "A warm beanie.",
		Availability: shopcrawl.InStock,
		Tags:         []string{"hats"},
		Images:       []string{"https://cdn.shopify.com/a.jpg"},
		URL:          "https://shop.example.com/products/wool-beanie",
		Variants: []shopcrawl.Variant{{
			ID:           "41",
			Name:         "L / Black",
			SKU:          "WB-L-BLK",
			PriceCents:   15000,
			Availability: shopcrawl.OutOfStock,
			Image:        "https://cdn.shopify.com/b.jpg",
			Options:      map[string]string{"size": "L"},
		}},
	}

	sp := shopcrawl.NormalizeProduct(p)

	assert.Equal(t, "7431351", sp.ProductID)
	assert.Equal(t, "Example Co", sp.Brand)
	assert.Equal(t, "Hats", sp.Category)
	assert.Equal(t, shopcrawl.SchemaInStock, sp.Availability)
	require.Len(t, sp.Variants, 1)
	assert.Equal(t, shopcrawl.SchemaOutOfStock, sp.Variants[0].Availability)
	assert.Equal(t, "https://cdn.shopify.com/b.jpg", sp.Variants[0].ImageURL)
}

func TestNormalizeProduct_Defaults(t *testing.T) {
	t.Parallel()

	p := &shopcrawl.Product{URL: "https://shop.example.com/products/x", Vendor: "Example Co"}

	sp := shopcrawl.NormalizeProduct(p)

	// Collections serialize as [] rather than null.
	assert.NotNil(t, sp.Tags)
	assert.NotNil(t, sp.ImageURLs)
	assert.NotNil(t, sp.Variants)
	assert.Equal(t, shopcrawl.SchemaInStock, sp.Availability)
	assert.Zero(t, sp.PriceCents)
}

func TestNormalizeProduct_Idempotent(t *testing.T) {
	t.Parallel()

	p := &shopcrawl.Product{
		URL:          "https://shop.example.com/products/x",
		Vendor:       "Example Co",
		Availability: shopcrawl.PreOrder,
		Variants: []shopcrawl.Variant{{
			ID:           "1",
			Availability: shopcrawl.OutOfStock,
		}},
	}

	first := shopcrawl.NormalizeProduct(p)

	// Feed the normalized availability strings back through parsing, the
	// way a record re-read from a catalog store would be.
	again := *p
	again.Availability = shopcrawl.ParseAvailability(first.Availability)
	again.Variants = []shopcrawl.Variant{{
		ID:           "1",
		Availability: shopcrawl.ParseAvailability(first.Variants[0].Availability),
	}}

	second := shopcrawl.NormalizeProduct(&again)

	assert.Equal(t, first, second)
}

func TestNormalizeCatalog(t *testing.T) {
	t.Parallel()

	products := []*shopcrawl.Product{
		{URL: "https://shop.example.com/products/a", Vendor: "Example Co"},
		{URL: "https://shop.example.com/products/b", Vendor: "Example Co"},
	}

	catalog := shopcrawl.NormalizeCatalog(products)

	require.Len(t, catalog.Products, 2)
	assert.Equal(t, "https://shop.example.com/products/a", catalog.Products[0].URL)
}

func TestAvailability_SchemaURL_Totality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, shopcrawl.SchemaInStock, shopcrawl.InStock.SchemaURL())
	assert.Equal(t, shopcrawl.SchemaOutOfStock, shopcrawl.OutOfStock.SchemaURL())
	assert.Equal(t, shopcrawl.SchemaPreOrder, shopcrawl.PreOrder.SchemaURL())
	assert.Equal(t, shopcrawl.SchemaInStock, shopcrawl.Availability("garbage").SchemaURL())
}
