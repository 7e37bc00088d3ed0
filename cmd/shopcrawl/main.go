// Command shopcrawl scrapes a Shopify store's product catalog into a
// normalized schema.org JSON document.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/anthropic"
	"github.com/shopcrawl/shopcrawl/crawl"
	"github.com/shopcrawl/shopcrawl/fs"
	"github.com/shopcrawl/shopcrawl/gemini"
	"github.com/shopcrawl/shopcrawl/goquery"
	"github.com/shopcrawl/shopcrawl/htmltomarkdown"
	shophttp "github.com/shopcrawl/shopcrawl/http"
	"github.com/shopcrawl/shopcrawl/rod"
	shopslog "github.com/shopcrawl/shopcrawl/slog"
	"github.com/shopcrawl/shopcrawl/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when a catalog path is given.
	DB *sqlite.DB

	// Extractor overrides the backend extractor when set. Used by
	// end-to-end tests to crawl without an API key.
	Extractor shopcrawl.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopcrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shopcrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	switch cmd {
	case "crawl":
		if err := m.wireCrawl(ctx, cli, deps, stderr); err != nil {
			return err
		}
		defer m.Close()
		defer func() {
			if deps.Crawler != nil && deps.Crawler.Fetcher != nil {
				deps.Crawler.Fetcher.Close()
			}
		}()
	case "products":
		m.DB = sqlite.NewDB(cli.Products.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open catalog at %q: %w", cli.Products.DB, err)
		}
		defer m.Close()
		deps.DB = m.DB
		deps.Products = sqlite.NewProductService(m.DB)
	}

	return kongCtx.Run(deps)
}

// wireCrawl builds the crawl pipeline from the parsed flags.
func (m *Main) wireCrawl(ctx context.Context, cli *CLI, deps *Dependencies, stderr io.Writer) error {
	c := &cli.Crawl

	vendor := c.Vendor
	if vendor == "" {
		vendor = storeNameFromURL(c.URL)
	}

	var logger *slog.Logger
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	converter := htmltomarkdown.NewConverter()

	var fetcher shopcrawl.Fetcher
	if c.Render {
		rf, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rf
	} else {
		fetcher = shophttp.NewFetcher()
	}

	extractor := m.Extractor
	if extractor == nil {
		var err error
		extractor, err = newBackendExtractor(ctx, c.Backend, c.Model, stderr)
		if err != nil {
			return err
		}
	}

	var sitemaps shopcrawl.SitemapService = shophttp.NewSitemapService(nil)
	var fallback shopcrawl.Extractor = goquery.NewFallbackExtractor(vendor, converter)
	fixer := goquery.NewFixer(vendor, converter)

	if logger != nil {
		sitemaps = shopslog.NewLoggingSitemapService(sitemaps, logger)
		fetcher = shopslog.NewLoggingFetcher(fetcher, logger)
		extractor = shopslog.NewLoggingExtractor(extractor, c.Backend, logger)
		fallback = shopslog.NewLoggingExtractor(fallback, "fallback", logger)
	}

	deps.Crawler = &crawl.Crawler{
		Sitemaps:    sitemaps,
		Fetcher:     fetcher,
		Extractor:   extractor,
		Fallback:    fallback,
		Fixer:       fixer,
		Pacer:       crawl.NewPacer(crawl.DefaultRequestsPerSecond),
		Concurrency: c.Concurrency,
	}

	if c.DB != "" {
		m.DB = sqlite.NewDB(c.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open catalog at %q: %w", c.DB, err)
		}
		deps.DB = m.DB
		deps.Products = sqlite.NewProductService(m.DB)
		deps.Crawler.Products = deps.Products
	}

	deps.Writer = fs.NewWriter()
	return nil
}

// newBackendExtractor builds the primary extractor for the chosen backend.
func newBackendExtractor(ctx context.Context, backend, model string, stderr io.Writer) (shopcrawl.Extractor, error) {
	switch backend {
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set")
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
		client := sdk.NewClient(option.WithAPIKey(apiKey))
		return anthropic.NewExtractor(client, model), nil
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewExtractor(client, model), nil
	}
}

// storeNameFromURL derives a store name from the base URL hostname.
func storeNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
