package mock

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of shopcrawl.SitemapService.
type SitemapService struct {
	SitemapsFn    func(ctx context.Context, baseURL string) ([]string, error)
	ProductURLsFn func(ctx context.Context, sitemapURL string) ([]string, error)
}

func (s *SitemapService) Sitemaps(ctx context.Context, baseURL string) ([]string, error) {
	return s.SitemapsFn(ctx, baseURL)
}

func (s *SitemapService) ProductURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	return s.ProductURLsFn(ctx, sitemapURL)
}
