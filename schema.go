package shopcrawl

// Schema.org availability URIs used in the external output.
const (
	SchemaInStock    = "https://schema.org/InStock"
	SchemaOutOfStock = "https://schema.org/OutOfStock"
	SchemaPreOrder   = "https://schema.org/PreOrder"
)

// SchemaURL returns the schema.org URI for an availability state.
// Unknown states map to InStock, keeping the mapping total.
func (a Availability) SchemaURL() string {
	switch a {
	case OutOfStock:
		return SchemaOutOfStock
	case PreOrder:
		return SchemaPreOrder
	default:
		return SchemaInStock
	}
}

// Catalog is the external output document: a single JSON object holding
// every normalized product.
type Catalog struct {
	Products []SchemaProduct `json:"products"`
}

// SchemaProduct is the external schema shape for one product.
type SchemaProduct struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Tags         []string        `json:"tags"`
	URL          string          `json:"url"`
	ImageURLs    []string        `json:"image_urls"`
	PriceCents   int             `json:"price_cents"`
	Availability string          `json:"availability"`
	Variants     []SchemaVariant `json:"variants"`
}

// SchemaVariant is the external schema shape for one variant.
type SchemaVariant struct {
	VariantID    string            `json:"variant_id"`
	Name         string            `json:"name"`
	SKU          string            `json:"sku"`
	PriceCents   int               `json:"price_cents"`
	Availability string            `json:"availability"`
	ImageURL     string            `json:"image_url"`
	Options      map[string]string `json:"options"`
}

// NormalizeCatalog maps product records to the external catalog document.
// It is pure and deterministic: no input is mutated, and normalizing an
// already-normalized record yields identical output.
func NormalizeCatalog(products []*Product) Catalog {
	out := Catalog{Products: make([]SchemaProduct, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, NormalizeProduct(p))
	}
	return out
}

// NormalizeProduct maps one product record to the external schema shape,
// applying the availability mapping and defaulting rules.
func NormalizeProduct(p *Product) SchemaProduct {
	sp := SchemaProduct{
		ProductID:    p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Brand:        p.Vendor,
		Category:     p.Type,
		Tags:         append([]string{}, p.Tags...),
		URL:          p.URL,
		ImageURLs:    append([]string{}, p.Images...),
		PriceCents:   nonNegative(p.PriceCents),
		Availability: p.Availability.SchemaURL(),
		Variants:     make([]SchemaVariant, 0, len(p.Variants)),
	}

	for _, v := range p.Variants {
		sv := SchemaVariant{
			VariantID:    v.ID,
			Name:         v.Name,
			SKU:          v.SKU,
			PriceCents:   nonNegative(v.PriceCents),
			Availability: v.Availability.SchemaURL(),
			ImageURL:     v.Image,
			Options:      v.Options,
		}
		if sv.Options == nil {
			sv.Options = map[string]string{}
		}
		sp.Variants = append(sp.Variants, sv)
	}

	return sp
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
