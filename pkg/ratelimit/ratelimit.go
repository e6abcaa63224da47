package ratelimit

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter wraps golang.org/x/time/rate.Limiter with a burst equal to the per-second rate
type RateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter with the specified requests per second
func NewRateLimiter(requestsPerSecond int) *RateLimiter {
	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		lastSeen: time.Now(),
	}
}

// Allow checks if a request can proceed without blocking
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// ClientLimiter keeps one RateLimiter per client key, created on first use.
// Keys idle for longer than the configured TTL are dropped by Sweep.
type ClientLimiter struct {
	requestsPerSecond int
	idleTTL           time.Duration

	mu       sync.Mutex
	limiters map[string]*RateLimiter
}

// NewClientLimiter creates a per-client limiter. A non-positive rate disables limiting.
func NewClientLimiter(requestsPerSecond int, idleTTL time.Duration) *ClientLimiter {
	return &ClientLimiter{
		requestsPerSecond: requestsPerSecond,
		idleTTL:           idleTTL,
		limiters:          make(map[string]*RateLimiter),
	}
}

// Allow reports whether the client identified by key may proceed
func (cl *ClientLimiter) Allow(key string) bool {
	if cl.requestsPerSecond <= 0 {
		return true
	}

	cl.mu.Lock()
	limiter, exists := cl.limiters[key]
	if !exists {
		limiter = NewRateLimiter(cl.requestsPerSecond)
		cl.limiters[key] = limiter
	}
	limiter.lastSeen = time.Now()
	cl.mu.Unlock()

	return limiter.Allow()
}

// Sweep removes limiters not used since now minus the idle TTL and returns how many were removed
func (cl *ClientLimiter) Sweep(now time.Time) int {
	if cl.idleTTL <= 0 {
		return 0
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	removed := 0
	for key, limiter := range cl.limiters {
		if now.Sub(limiter.lastSeen) > cl.idleTTL {
			delete(cl.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients
func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.limiters)
}

// Run sweeps idle clients every interval until ctx is cancelled
func (cl *ClientLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := cl.Sweep(now); removed > 0 {
				log.WithFields(log.Fields{"removed": removed, "tracked": cl.Len()}).Debug("idle rate limiters swept")
			}
		}
	}
}
