package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/foodyhq/backend/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(time.Minute, time.Minute)

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "key", "value")
	v, found := c.Get(ctx, "key")
	require.True(t, found)
	assert.Equal(t, "value", v)

	c.Delete(ctx, "key")
	_, found = c.Get(ctx, "key")
	assert.False(t, found)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(10*time.Millisecond, time.Minute)

	c.Set(ctx, "key", "value")
	_, found := c.Get(ctx, "key")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = c.Get(ctx, "key")
	assert.False(t, found, "expired entry must not be served even before cleanup runs")
}

func TestStopCleanupIsIdempotent(t *testing.T) {
	c := cache.NewInMemoryCache(time.Minute, time.Millisecond)
	c.StartCleanup(context.Background())
	c.StopCleanup()
	c.StopCleanup()
}
