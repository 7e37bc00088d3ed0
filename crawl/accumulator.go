package crawl

import (
	"sync"

	"github.com/shopcrawl/shopcrawl"
)

// Accumulator collects products from concurrent workers. It is safe for
// concurrent use; products are kept in the order they were added.
type Accumulator struct {
	mu       sync.Mutex
	products []shopcrawl.Product
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{products: []shopcrawl.Product{}}
}

// Add appends a product to the accumulated set.
func (a *Accumulator) Add(product shopcrawl.Product) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.products = append(a.products, product)
}

// Len reports how many products have been accumulated so far.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.products)
}

// Products returns a copy of the accumulated products.
func (a *Accumulator) Products() []shopcrawl.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]shopcrawl.Product, len(a.products))
	copy(out, a.products)
	return out
}
