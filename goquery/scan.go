// Package goquery provides deterministic, selector-based product
// extraction from storefront page markup. It implements both the fixup
// stage that patches semantically-extracted records and the structural
// fallback extractor used when semantic extraction is unusable.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopcrawl/shopcrawl"
	"golang.org/x/net/html"
)

// Selector families for Shopify storefront themes. Within each family the
// first matching selector wins; once a field is populated no later
// selector is tried.
var (
	nameSelectors = []string{
		"h1.product-single__title",
		".product__title h1",
		"h1[data-product-title]",
		"h1",
	}

	priceSelectors = []string{
		".price__regular .price-item--regular",
		".product__price .price-item--regular",
		"[data-price]",
		".price",
	}

	imageSelectors = []string{
		".product__media img",
		".product-single__photo img",
		".product__image img",
		"img[data-src]",
		"img[src*='cdn.shopify.com']",
	}

	descriptionSelectors = []string{
		".product__description",
		".product-single__description",
		"[data-product-description]",
		".rte",
	}

	productIDSelectors = []string{
		"[data-product-id]",
		".product-single__meta [data-product-id]",
	}
)

// assetCDNHost marks image URLs served from the storefront's asset CDN.
const assetCDNHost = "cdn.shopify.com"

// scanner runs the deterministic field scans over one parsed page.
type scanner struct {
	doc *goquery.Document
}

func newScanner(pageHTML string) (*scanner, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINTERNAL, "parsing page markup: %s", err)
	}
	return &scanner{doc: doc}, nil
}

// scanName returns the product name from the first matching title selector.
func (s *scanner) scanName() string {
	for _, selector := range nameSelectors {
		if el := s.doc.Find(selector).First(); el.Length() > 0 {
			if name := strings.TrimSpace(el.Text()); name != "" {
				return name
			}
		}
	}
	return ""
}

// scanPriceCents returns the displayed price in integer cents, or 0 when
// no price selector matches or the matched text has no parseable number.
func (s *scanner) scanPriceCents() int {
	for _, selector := range priceSelectors {
		el := s.doc.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		if cents := shopcrawl.ParsePriceCents(strings.TrimSpace(el.Text())); cents > 0 {
			return cents
		}
	}
	return 0
}

// scanImages returns asset-CDN image URLs from the first image selector
// family that yields any, normalized to absolute HTTPS form.
func (s *scanner) scanImages() []string {
	for _, selector := range imageSelectors {
		var images []string
		seen := make(map[string]bool)

		s.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			src := imageSource(sel)
			if src == "" || !strings.Contains(src, assetCDNHost) {
				return
			}
			src = shopcrawl.NormalizeImageURL(src)
			if !seen[src] {
				seen[src] = true
				images = append(images, src)
			}
		})

		if len(images) > 0 {
			return images
		}
	}
	return nil
}

// imageSource reads the src attribute of an img element, falling back to
// data-src for lazy-loaded images.
func imageSource(sel *goquery.Selection) string {
	for _, node := range sel.Nodes {
		if src := attrValue(node, "src"); src != "" {
			return src
		}
		if src := attrValue(node, "data-src"); src != "" {
			return src
		}
	}
	return ""
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// scanDescription returns the product description from the first matching
// description container. When a converter is provided the container's
// HTML is converted to markdown; otherwise (or on conversion failure) the
// plain text content is used.
func (s *scanner) scanDescription(converter shopcrawl.Converter) string {
	for _, selector := range descriptionSelectors {
		el := s.doc.Find(selector).First()
		if el.Length() == 0 {
			continue
		}

		if converter != nil {
			if inner, err := el.Html(); err == nil {
				if md, err := converter.Convert(inner); err == nil {
					if md = strings.TrimSpace(md); md != "" {
						return md
					}
				}
			}
		}

		if text := strings.TrimSpace(el.Text()); text != "" {
			return text
		}
	}
	return ""
}

// scanProductID looks for a product identifier in known id attribute
// patterns and JSON-LD structured data.
func (s *scanner) scanProductID() string {
	for _, selector := range productIDSelectors {
		if id, ok := s.doc.Find(selector).First().Attr("data-product-id"); ok && id != "" {
			return id
		}
	}

	var id string
	s.doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		id = productIDFromJSONLD(sel.Text())
		return id == ""
	})
	return id
}

// productIDFromJSONLD extracts a product identifier from a JSON-LD block
// describing a schema.org Product. The identifier is the last path
// segment of the node's @id.
func productIDFromJSONLD(raw string) string {
	var node struct {
		Type string `json:"@type"`
		ID   string `json:"@id"`
	}
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return ""
	}
	if node.Type != "Product" || node.ID == "" {
		return ""
	}
	parts := strings.Split(node.ID, "/")
	return parts[len(parts)-1]
}

// extractVariants returns an empty variant list. Mining variants out of
// select/option markup and embedded variant JSON is not implemented;
// semantic extraction is the only source of variant records.
func (s *scanner) extractVariants() []shopcrawl.Variant {
	return []shopcrawl.Variant{}
}
