package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopcrawl/shopcrawl"
)

// sitemapNamespaces are the recognized sitemap XML namespace URIs, in
// priority order: the sitemap protocol namespace, no namespace, and the
// legacy Google namespace. The first form that yields matching elements
// wins, so a document carrying multiple forms is never double-counted.
var sitemapNamespaces = []string{
	"http://www.sitemaps.org/schemas/sitemap/0.9",
	"",
	"http://www.google.com/schemas/sitemap/0.84",
}

// productPathMarkers identify product pages by URL path, case-insensitively.
var productPathMarkers = []string{"/products/", "/product/"}

// Ensure SitemapService implements shopcrawl.SitemapService.
var _ shopcrawl.SitemapService = (*SitemapService)(nil)

// SitemapService discovers product URLs from storefront sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, a client with DefaultFetchTimeout is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapService{client: client}
}

// Sitemaps resolves the leaf sitemap documents for a site root.
// It fetches {root}/sitemap.xml and returns the child sitemap URLs when
// the document is a sitemap index. An empty result means the caller
// should treat the root sitemap itself as a leaf.
func (s *SitemapService) Sitemaps(ctx context.Context, baseURL string) ([]string, error) {
	sitemapURL, err := RootSitemapURL(baseURL)
	if err != nil {
		return nil, err
	}

	root, err := s.fetchXML(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	return collectLocs(root, "sitemap"), nil
}

// ProductURLs extracts candidate product page URLs from one leaf sitemap.
func (s *SitemapService) ProductURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	root, err := s.fetchXML(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, loc := range collectLocs(root, "url") {
		if isProductURL(loc) {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

// RootSitemapURL builds the canonical sitemap.xml location for a site root,
// normalizing any trailing slash.
func RootSitemapURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", shopcrawl.Errorf(shopcrawl.EINVALID, "invalid site URL %q", baseURL)
	}
	return strings.TrimSuffix(baseURL, "/") + "/sitemap.xml", nil
}

// isProductURL reports whether the URL contains a product-path marker.
func isProductURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, marker := range productPathMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// fetchXML fetches a URL and parses the body as an XML document,
// returning the root element.
func (s *SitemapService) fetchXML(ctx context.Context, targetURL string) (*etree.Element, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid sitemap URL %q: %s", targetURL, err)
	}
	req.Header.Set("User-Agent", shopcrawl.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "fetching %s: %s", targetURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(io.LimitReader(resp.Body, 50<<20)); err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "parsing sitemap XML from %s: %s", targetURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "empty sitemap XML from %s", targetURL)
	}
	return root, nil
}

// collectLocs gathers the text of <loc> children of every element with
// the given tag, trying each recognized namespace in priority order and
// stopping at the first namespace that yields matching elements.
func collectLocs(root *etree.Element, tag string) []string {
	for _, ns := range sitemapNamespaces {
		var matched []*etree.Element
		walkElements(root, func(el *etree.Element) {
			if el.Tag == tag && elementNamespace(el) == ns {
				matched = append(matched, el)
			}
		})
		if len(matched) == 0 {
			continue
		}

		var locs []string
		for _, el := range matched {
			for _, child := range el.ChildElements() {
				if child.Tag != "loc" || elementNamespace(child) != ns {
					continue
				}
				if text := strings.TrimSpace(child.Text()); text != "" {
					locs = append(locs, text)
				}
			}
		}
		return locs
	}
	return nil
}

// walkElements visits every descendant element of el in document order.
func walkElements(el *etree.Element, visit func(*etree.Element)) {
	for _, child := range el.ChildElements() {
		visit(child)
		walkElements(child, visit)
	}
}

// elementNamespace resolves the namespace URI in scope for an element by
// walking up the tree to the nearest matching xmlns declaration.
func elementNamespace(el *etree.Element) string {
	attrKey := "xmlns"
	if el.Space != "" {
		attrKey = "xmlns:" + el.Space
	}
	for e := el; e != nil; e = e.Parent() {
		if a := e.SelectAttr(attrKey); a != nil {
			return a.Value
		}
	}
	return ""
}
