package mock

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of shopcrawl.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error)
}

func (e *Extractor) Extract(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
	return e.ExtractFn(ctx, page)
}

var _ shopcrawl.Fixer = (*Fixer)(nil)

// Fixer is a mock implementation of shopcrawl.Fixer.
type Fixer struct {
	FixFn func(product *shopcrawl.Product, page shopcrawl.Page)
}

func (f *Fixer) Fix(product *shopcrawl.Product, page shopcrawl.Page) {
	if f.FixFn != nil {
		f.FixFn(product, page)
	}
}
