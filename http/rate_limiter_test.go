package http

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)
	defer rl.Stop()

	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	now := start
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		d, err := rl.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, want, d.Remaining)
		assert.Equal(t, start.Add(time.Hour), d.ResetAt)
	}

	now = start.Add(59 * time.Minute)
	d, err := rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	// The window does not slide with rejected requests.
	now = start.Add(time.Hour)
	d, err = rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
	assert.Equal(t, now.Add(time.Hour), d.ResetAt)
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()
	ctx := context.Background()

	d, _ := rl.Allow(ctx, "a")
	assert.True(t, d.Allowed)
	d, _ = rl.Allow(ctx, "a")
	assert.False(t, d.Allowed)
	d, _ = rl.Allow(ctx, "b")
	assert.True(t, d.Allowed)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()

	start := time.Now()
	now := start
	rl.now = func() time.Time { return now }

	_, _ = rl.Allow(context.Background(), "a")
	now = start.Add(30 * time.Second)
	_, _ = rl.Allow(context.Background(), "b")
	require.Equal(t, 2, rl.size())

	now = start.Add(time.Minute)
	rl.cleanup()
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	rl := NewRedisLimiter(client, 2, time.Hour)
	ctx := context.Background()

	d, err := rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
	assert.Equal(t, time.Hour, mr.TTL(rateLimitKeyPrefix+"1.2.3.4"))

	d, _ = rl.Allow(ctx, "1.2.3.4")
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, err = rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), d.ResetAt, time.Minute)

	mr.FastForward(time.Hour)
	d, err = rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
}

func TestRedisLimiter_RepairsMissingExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set(rateLimitKeyPrefix+"1.2.3.4", "5"))

	rl := NewRedisLimiter(client, 10, time.Minute)
	d, err := rl.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 4, d.Remaining)
	assert.Equal(t, time.Minute, mr.TTL(rateLimitKeyPrefix+"1.2.3.4"))
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	_, err := NewRedisLimiter(client, 1, time.Minute).Allow(context.Background(), "x")
	assert.Error(t, err)
}
