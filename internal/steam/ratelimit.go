package steam

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter controls request pacing and a rolling request quota.
// It uses a token bucket for per-second pacing and a fixed-length window
// (five minutes for the storefront API) for quota tracking.
type RateLimiter struct {
	limiter *rate.Limiter
	used    atomic.Int64
	quota   int64
	window  time.Duration
	resetAt time.Time
	mu      sync.Mutex
	nowFunc func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and quota per window. A quota of zero disables quota tracking.
func NewRateLimiter(
	perSecond float64,
	burst int,
	quota int64,
	window time.Duration,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		quota:   quota,
		window:  window,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(window)
	return r
}

// Wait blocks until the limiter allows the call, or the context is canceled.
// Returns ErrQuotaExhausted if the window quota has been used up.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkReset()

	if r.quota > 0 && r.used.Load() >= r.quota {
		return fmt.Errorf("%w (%d/%d, resets %s)",
			ErrQuotaExhausted, r.used.Load(), r.quota, r.ResetAt().Format(time.RFC3339))
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.used.Add(1)
	return nil
}

// Used returns the number of requests made in the current window.
func (r *RateLimiter) Used() int64 {
	return r.used.Load()
}

// Quota returns the configured per-window quota.
func (r *RateLimiter) Quota() int64 {
	return r.quota
}

// Remaining returns the number of requests left in the current window.
func (r *RateLimiter) Remaining() int64 {
	remaining := r.quota - r.used.Load()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetAt returns when the current window expires.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

func (r *RateLimiter) checkReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used.Store(0)
		r.resetAt = now.Add(r.window)
	}
}
