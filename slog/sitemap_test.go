package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcrawl/shopcrawl/mock"
	shopslog "github.com/shopcrawl/shopcrawl/slog"
)

func TestLoggingSitemapService(t *testing.T) {
	t.Parallel()

	t.Run("logs sitemap index with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			SitemapsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return []string{
					"https://shop.example.com/sitemap_products_1.xml",
					"https://shop.example.com/sitemap_pages_1.xml",
				}, nil
			},
		}

		svc := shopslog.NewLoggingSitemapService(inner, logger)
		sitemaps, err := svc.Sitemaps(context.Background(), "https://shop.example.com")

		require.NoError(t, err)
		assert.Len(t, sitemaps, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap index")
		assert.Contains(t, output, "url=https://shop.example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs product url collection", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			ProductURLsFn: func(ctx context.Context, sitemapURL string) ([]string, error) {
				return []string{"https://shop.example.com/products/a"}, nil
			},
		}

		svc := shopslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.ProductURLs(context.Background(), "https://shop.example.com/sitemap_products_1.xml")

		require.NoError(t, err)
		assert.Len(t, urls, 1)
		output := buf.String()
		assert.Contains(t, output, "product urls")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			SitemapsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := shopslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.Sitemaps(context.Background(), "https://shop.example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sitemap index")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
