// Package cache wraps repositories with a Redis read-through cache for lookups by id.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/products_accounts/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// ViewCache is a JSON-backed Redis cache bound to a value type T.
// A ttl of 0 keeps keys until they are overwritten or deleted.
type ViewCache[T any] struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewViewCache[T any](client redis.UniversalClient, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get returns (nil, false) on a miss, a Redis error or an undecodable value.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.GetLoggerFromCtx(ctx).Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache value undecodable", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return &v, true
}

// Set stores value under key. Write failures are logged; the cache is best effort.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
