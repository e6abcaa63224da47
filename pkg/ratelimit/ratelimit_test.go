package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name           string
		requestsPerSec int
		requests       int
		expectedPasses int
		duration       time.Duration
	}{
		{
			name:           "should allow requests within limit",
			requestsPerSec: 10,
			requests:       10,
			expectedPasses: 10,
			duration:       1 * time.Second,
		},
		{
			name:           "should block requests exceeding limit",
			requestsPerSec: 5,
			requests:       10,
			expectedPasses: 5,
			duration:       500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRateLimiter(tt.requestsPerSec)

			passed := 0
			for i := 0; i < tt.requests; i++ {
				if limiter.Allow() {
					passed++
				}
			}

			assert.LessOrEqual(t, passed, tt.expectedPasses)
		})
	}
}

func TestRateLimiter_Concurrent(t *testing.T) {
	limiter := NewRateLimiter(100) // 100 requests per second

	var wg sync.WaitGroup
	passed := 0
	var mu sync.Mutex

	// Simulate 200 concurrent requests
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow() {
				mu.Lock()
				passed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	// Should allow approximately 100 requests in a short burst
	assert.LessOrEqual(t, passed, 150) // Some tolerance for timing
	assert.GreaterOrEqual(t, passed, 50)
}

func TestClientLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewClientLimiter(2, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// A different client has its own bucket
	assert.True(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Len())
}

func TestClientLimiter_Disabled(t *testing.T) {
	limiter := NewClientLimiter(0, time.Minute)

	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.Equal(t, 0, limiter.Len())
}

func TestClientLimiter_Sweep(t *testing.T) {
	limiter := NewClientLimiter(5, time.Minute)
	limiter.Allow("a")
	limiter.Allow("b")

	assert.Equal(t, 0, limiter.Sweep(time.Now()))
	assert.Equal(t, 2, limiter.Sweep(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, limiter.Len())
}

func TestClientLimiter_SweepTracked(t *testing.T) {
	base := time.Now()

	tests := []struct {
		name        string
		idleTTL     time.Duration
		sweepAt     time.Duration
		wantRemoved int
		wantTracked int
	}{
		{name: "nothing idle yet", idleTTL: time.Minute, sweepAt: 30 * time.Second, wantRemoved: 0, wantTracked: 3},
		{name: "all idle", idleTTL: time.Minute, sweepAt: 2 * time.Minute, wantRemoved: 3, wantTracked: 0},
		{name: "zero ttl keeps everything", idleTTL: 0, sweepAt: time.Hour, wantRemoved: 0, wantTracked: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewClientLimiter(5, tt.idleTTL)
			for _, key := range []string{"a", "b", "c"} {
				limiter.Allow(key)
			}

			assert.Equal(t, tt.wantRemoved, limiter.Sweep(base.Add(tt.sweepAt)))
			assert.Equal(t, tt.wantTracked, limiter.Len())
		})
	}
}

func TestClientLimiter_RunStopsOnCancel(t *testing.T) {
	limiter := NewClientLimiter(5, time.Millisecond)
	limiter.Allow("a")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
