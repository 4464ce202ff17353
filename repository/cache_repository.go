package repository

import (
	"context"
	"time"
)

// CacheRepository stores generated explanations keyed by a digest of the
// calculation summary. A zero ttl means no expiry.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool)               { return "", false }
func (NopCache) Set(context.Context, string, string, time.Duration) error { return nil }
