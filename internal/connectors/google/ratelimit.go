package google

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Drive allows roughly 12k queries per minute per user. Staying well under
// that keeps folder walks from tripping per-user quota errors.
const (
	driveRequestsPerSecond = 8
	driveBurst             = 10
)

// RateLimiter throttles Drive API calls. When the API returns a rate limit
// error the limiter additionally holds all callers until the reported
// retry-after deadline has passed.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	holdTo  time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(driveRequestsPerSecond), driveBurst),
	}
}

// Wait blocks until the next request is allowed or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	holdTo := r.holdTo
	r.mu.Unlock()

	if wait := time.Until(holdTo); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return r.limiter.Wait(ctx)
}

// Backoff records a rate limit response so subsequent calls pause.
func (r *RateLimiter) Backoff(retryAfter time.Duration) {
	if retryAfter <= 0 {
		retryAfter = 5 * time.Second
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if until := time.Now().Add(retryAfter); until.After(r.holdTo) {
		r.holdTo = until
	}
}
