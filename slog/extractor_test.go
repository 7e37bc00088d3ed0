package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/mock"
	shopslog "github.com/shopcrawl/shopcrawl/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with extractor name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
				return &shopcrawl.Product{Name: "Trail Runner 2", Vendor: "Test Store", URL: page.URL}, nil
			},
		}

		e := shopslog.NewLoggingExtractor(inner, "gemini", logger)
		product, err := e.Extract(context.Background(), shopcrawl.Page{
			URL:  "https://shop.example.com/products/trail-runner-2",
			HTML: "<html></html>",
		})

		require.NoError(t, err)
		assert.Equal(t, "Trail Runner 2", product.Name)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "extractor=gemini")
		assert.Contains(t, output, "product=\"Trail Runner 2\"")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
				return nil, errors.New("model unavailable")
			},
		}

		e := shopslog.NewLoggingExtractor(inner, "fallback", logger)
		_, err := e.Extract(context.Background(), shopcrawl.Page{
			URL:  "https://shop.example.com/products/a",
			HTML: "<html></html>",
		})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "extractor=fallback")
		assert.Contains(t, output, "err=\"model unavailable\"")
	})
}
