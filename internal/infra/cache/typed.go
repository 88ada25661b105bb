package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool) {
	var value T
	data, found := c.Get(ctx, key)
	if !found {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		slog.Warn("dropping undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))
		c.Delete(ctx, key)
		return value, false
	}

	return value, true
}

func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache value: %w", err)
	}

	if !c.Set(ctx, key, data, ttl) {
		return fmt.Errorf("cache rejected key %s", key)
	}

	return nil
}

// Remember returns the cached value for key or stores what loader yields.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	var value T
	data, err := c.GetOrSet(ctx, key, ttl, func() ([]byte, error) {
		loaded, err := loader()
		if err != nil {
			return nil, err
		}
		return json.Marshal(loaded)
	})
	if err != nil {
		return value, err
	}

	if err := json.Unmarshal(data, &value); err != nil {
		c.Delete(ctx, key)
		return loader()
	}

	return value, nil
}

// Invalidate drops every key matching pattern.
func Invalidate(ctx context.Context, c Cache, pattern string) {
	keys, err := c.Keys(ctx, pattern)
	if err != nil {
		slog.Error("listing cache keys", slog.String("pattern", pattern), slog.String("error", err.Error()))
		return
	}

	c.Delete(ctx, keys...)
}
