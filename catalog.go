package shopcrawl

import "context"

// ProductService persists normalized product records to a local catalog.
// The catalog is an output sink only; crawls never read from it.
type ProductService interface {
	// CreateProduct stores a product and its variants.
	CreateProduct(ctx context.Context, product *Product) error

	// FindProductByURL retrieves a product by its source URL.
	// Returns ENOTFOUND if no product with the URL exists.
	FindProductByURL(ctx context.Context, url string) (*Product, error)

	// FindProducts retrieves products matching the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
}

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	Vendor *string
	URL    *string

	Offset int
	Limit  int
}
