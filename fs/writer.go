// Package fs writes the catalog document to disk.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopcrawl/shopcrawl"
)

// schemaHeader documents the catalog file format for downstream
// consumers. It precedes the JSON document in every output file.
const schemaHeader = `/*
Purpose: This file contains a normalized, AI-friendly list of Shopify products and their variants scraped from a store.
It is designed to make it easy for an AI agent to search, filter, and select products and variants for purchase,
without needing to scrape the site again.

Schema Template:
{
  'products': [
    {
      'product_id': str, // Unique Shopify product ID
      'name': str, // Product name
      'description': str, // Product description
      'brand': str, // Brand or vendor
      'category': str, // Product category/type
      'tags': [str], // List of tags/keywords
      'url': str, // Product page URL
      'image_urls': [str], // List of product image URLs
      'price_cents': int, // Default price in cents
      'availability': str, // Product-level availability
      'variants': [
        {
          'variant_id': str, // Unique variant ID
          'name': str, // Variant name (e.g., 'L / Black')
          'sku': str, // SKU
          'price_cents': int, // Price in cents
          'availability': str, // Variant-level availability
          'image_url': str, // Variant image URL
          'options': {str: str} // Option name-value pairs (e.g., {'size': 'L', 'color': 'Black'})
        }
      ]
    }
  ]
}

Field Explanations:
- product_id: Unique Shopify product ID (string or number as string)
- name: Product name
- description: Full product description
- brand: Brand or vendor name
- category: Product category/type (if available)
- tags: List of tags/keywords (if available)
- url: Product page URL
- image_urls: List of product image URLs
- price_cents: Default product price in cents (integer)
- availability: Product-level availability (e.g., 'InStock', 'OutOfStock')
- variants: List of variant objects, each with:
    - variant_id: Unique variant ID
    - name: Variant name (e.g., 'L / Black')
    - sku: Stock Keeping Unit
    - price_cents: Price in cents (integer)
    - availability: Variant-level availability
    - image_url: Variant image URL
    - options: Dictionary of option name-value pairs (e.g., {'size': 'L', 'color': 'Black'})
*/
`

// FormatCatalog renders the catalog file content: the schema header
// comment followed by the indented JSON document.
func FormatCatalog(catalog shopcrawl.Catalog) (string, error) {
	body, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", err
	}
	return schemaHeader + string(body) + "\n", nil
}

// Writer writes catalog documents to files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteCatalog writes the catalog to path with atomic update semantics:
// the content lands in a temporary file in the same directory and is
// renamed over the destination, so readers never see a partial file.
func (w *Writer) WriteCatalog(path string, catalog shopcrawl.Catalog) error {
	content, err := FormatCatalog(catalog)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
