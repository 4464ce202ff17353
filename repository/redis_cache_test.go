package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisCache_SetGet(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisCache(client)
	ctx := context.Background()

	_, ok := c.Get(ctx, "abc")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "abc", "<p>cached</p>", time.Hour))

	v, ok := c.Get(ctx, "abc")
	require.True(t, ok)
	assert.Equal(t, "<p>cached</p>", v)
	assert.True(t, mr.Exists(explanationKeyPrefix+"abc"))
	assert.Equal(t, time.Hour, mr.TTL(explanationKeyPrefix+"abc"))

	mr.FastForward(time.Hour)
	_, ok = c.Get(ctx, "abc")
	assert.False(t, ok)
}

func TestRedisCache_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisCache(client)

	_, ok := c.Get(context.Background(), "abc")
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "abc", "v", 0))
}
