// Package ratelimit throttles outbound calls to the filings registry.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter grants at most one call per 1/rps seconds across every goroutine sharing it.
type Limiter struct {
	limiter *rate.Limiter
}

func New(rps float64) (*Limiter, error) {
	if rps <= 0 {
		return nil, fmt.Errorf("requests per second must be positive, got %v", rps)
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Wait blocks until the next call may proceed. It only fails when ctx is done first.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
