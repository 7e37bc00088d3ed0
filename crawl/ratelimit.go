package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond paces the pool at one request per 200ms,
// which keeps storefront rate limiters quiet at the default pool width.
const DefaultRequestsPerSecond = 5.0

// Pacer throttles request starts across the whole worker pool using a
// token bucket with a burst of 1, so requests are spaced evenly rather
// than released in clumps. It is safe for concurrent use.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing rps request starts per second.
func NewPacer(rps float64) *Pacer {
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the pacer allows the next request to start.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
