package httpapi

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the default sustained request rate.
const DefaultRequestsPerSecond = 5.0

// RateLimiter throttles outgoing requests with a token bucket.
// A limiter built with a non-positive rate never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with a burst of one.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until a request can be made or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured rate.
func (r *RateLimiter) Limit() rate.Limit {
	return r.limiter.Limit()
}
