package mock

import "github.com/shopcrawl/shopcrawl"

var _ shopcrawl.Converter = (*Converter)(nil)

// Converter is a mock implementation of shopcrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
