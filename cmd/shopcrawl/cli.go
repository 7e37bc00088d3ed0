package main

import (
	"context"
	"io"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/crawl"
	"github.com/shopcrawl/shopcrawl/fs"
	"github.com/shopcrawl/shopcrawl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Products shopcrawl.ProductService
	Crawler  *crawl.Crawler
	Writer   *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl    CrawlCmd    `cmd:"" help:"Scrape a Shopify store's product catalog"`
	Products ProductsCmd `cmd:"" help:"List products stored in a catalog database"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string `arg:"" help:"Base URL of the Shopify store"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent fetch limit"`
	Output      string `short:"o" default:"products.json" help:"Output file path"`
	Vendor      string `help:"Store name used when pages omit a vendor (defaults to the store hostname)"`
	Backend     string `enum:"gemini,claude" default:"gemini" help:"Extraction backend"`
	Model       string `help:"Override the backend's default model"`
	DB          string `help:"Also store products in a SQLite catalog at this path"`
	Render      bool   `help:"Render pages in a headless browser before extraction"`
	Verbose     bool   `short:"v" help:"Log each fetch and extraction to stderr"`
}

// ProductsCmd is the "products" subcommand.
type ProductsCmd struct {
	DB     string `arg:"" help:"Catalog database path"`
	Vendor string `help:"Filter by vendor"`
	URL    string `help:"Show the product with this source URL"`
	Limit  int    `default:"50" help:"Maximum number of products to list"`
	Offset int    `help:"Number of products to skip"`
}
