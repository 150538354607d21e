package ratelimit

import (
	"sync"
	"time"

	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
)

// TokenBucket is a token bucket rate limiter: tokens refill continuously at
// a fixed rate up to the burst capacity, and each permitted operation
// consumes one.
type TokenBucket struct {
	rate  float64
	burst float64

	mu     sync.Mutex
	tokens float64
	last   time.Time

	log *logger.Logger
}

// New creates a token bucket allowing rate operations per second with the
// given burst capacity.
func New(rate float64, burst int) *TokenBucket {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}

	tb := &TokenBucket{
		rate:   rate,
		burst:  float64(burst),
		tokens: float64(burst),
		last:   time.Now(),
		log:    logger.GetLogger("ratelimit.token_bucket"),
	}
	tb.log.Debugf("token bucket created with rate=%.2f, burst=%d", rate, burst)
	return tb
}

// Allow reports whether one operation is permitted now.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.last).Seconds() * tb.rate
	if tb.tokens > tb.burst {
		tb.tokens = tb.burst
	}
	tb.last = now

	if tb.tokens < 1 {
		return false
	}
	tb.tokens--
	return true
}

// Limit returns the refill rate in operations per second.
func (tb *TokenBucket) Limit() float64 { return tb.rate }

// Burst returns the bucket capacity.
func (tb *TokenBucket) Burst() int { return int(tb.burst) }
