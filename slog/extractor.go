package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopcrawl/shopcrawl"
)

// Ensure LoggingExtractor implements shopcrawl.Extractor.
var _ shopcrawl.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. The name attribute
// tells extractions by the primary and fallback extractors apart.
type LoggingExtractor struct {
	next   shopcrawl.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next shopcrawl.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, page shopcrawl.Page) (product *shopcrawl.Product, err error) {
	defer func(begin time.Time) {
		name := ""
		if product != nil {
			name = product.Name
		}
		e.logger.Info("extract",
			"extractor", e.name,
			"url", page.URL,
			"product", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, page)
}
