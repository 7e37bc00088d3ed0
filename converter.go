package shopcrawl

// Converter converts HTML to Markdown.
// Product descriptions on storefront pages are rich HTML blocks; the
// converter turns them into clean text while preserving structure.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
