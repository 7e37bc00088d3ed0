package mock

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of shopcrawl.ProductService.
type ProductService struct {
	CreateProductFn    func(ctx context.Context, product *shopcrawl.Product) error
	FindProductByURLFn func(ctx context.Context, url string) (*shopcrawl.Product, error)
	FindProductsFn     func(ctx context.Context, filter shopcrawl.ProductFilter) ([]*shopcrawl.Product, error)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *shopcrawl.Product) error {
	return s.CreateProductFn(ctx, product)
}

func (s *ProductService) FindProductByURL(ctx context.Context, url string) (*shopcrawl.Product, error) {
	return s.FindProductByURLFn(ctx, url)
}

func (s *ProductService) FindProducts(ctx context.Context, filter shopcrawl.ProductFilter) ([]*shopcrawl.Product, error) {
	return s.FindProductsFn(ctx, filter)
}
