// Package slog provides logging decorators for shopcrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopcrawl/shopcrawl"
)

// Ensure LoggingSitemapService implements shopcrawl.SitemapService.
var _ shopcrawl.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   shopcrawl.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next shopcrawl.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// Sitemaps delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) Sitemaps(ctx context.Context, baseURL string) (sitemaps []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap index",
			"url", baseURL,
			"count", len(sitemaps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Sitemaps(ctx, baseURL)
}

// ProductURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) ProductURLs(ctx context.Context, sitemapURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("product urls",
			"url", sitemapURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ProductURLs(ctx, sitemapURL)
}
