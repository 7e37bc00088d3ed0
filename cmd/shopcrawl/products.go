package main

import (
	"fmt"

	"github.com/shopcrawl/shopcrawl"
)

// Run executes the products command.
func (c *ProductsCmd) Run(deps *Dependencies) error {
	if c.URL != "" {
		product, err := deps.Products.FindProductByURL(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shopcrawl.ErrorMessage(err))
			return err
		}
		printProduct(deps, product)
		return nil
	}

	filter := shopcrawl.ProductFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Vendor != "" {
		filter.Vendor = &c.Vendor
	}

	products, err := deps.Products.FindProducts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopcrawl.ErrorMessage(err))
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Use 'shopcrawl crawl --db' to populate a catalog.")
		return nil
	}

	for _, p := range products {
		printProduct(deps, p)
	}

	return nil
}

func printProduct(deps *Dependencies, p *shopcrawl.Product) {
	fmt.Fprintf(deps.Stdout, "%s  %s  $%.2f  %s\n", p.ID, p.Name, float64(p.PriceCents)/100, p.URL)
	for _, v := range p.Variants {
		fmt.Fprintf(deps.Stdout, "    %s  %s  $%.2f  %s\n", v.ID, v.Name, float64(v.PriceCents)/100, v.Availability)
	}
}
