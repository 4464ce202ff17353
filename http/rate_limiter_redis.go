package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "fincon:ratelimit:"

// RedisLimiter keeps quota counters in Redis so they survive restarts and
// are shared between replicas.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	key = rateLimitKeyPrefix + key

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, key, r.window).Err(); err != nil {
			return Decision{}, err
		}
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}
	if ttl < 0 {
		// A counter left without expiry would block the caller forever.
		if err := r.client.PExpire(ctx, key, r.window).Err(); err != nil {
			return Decision{}, err
		}
		ttl = r.window
	}

	d := Decision{
		Limit:   r.limit,
		ResetAt: time.Now().Add(ttl),
	}
	if count <= int64(r.limit) {
		d.Allowed = true
		d.Remaining = r.limit - int(count)
	}
	return d, nil
}
