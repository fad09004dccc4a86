package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestRateLimiterStore_GetLimiter(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 2}
	now := time.Now()

	first := store.getLimiter("10.0.0.1", now)
	again := store.getLimiter("10.0.0.1", now.Add(time.Second))
	other := store.getLimiter("10.0.0.2", now)

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	now := time.Now()
	store.getLimiter("idle", now.Add(-2*time.Hour))
	store.getLimiter("active", now)

	removed := store.evictIdle(now.Add(-time.Hour))

	assert.Equal(t, 1, removed)
	_, idleFound := store.limiters.Load("idle")
	_, activeFound := store.limiters.Load("active")
	assert.False(t, idleFound)
	assert.True(t, activeFound)
}

func TestRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	_ = RateLimitMiddleware(ctx, 1, 1, discardLogger())
	cancel()
}
