package cache

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache stores opaque byte values with a TTL. Use the JSON helpers in
// typed.go to keep both backends interchangeable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Delete(ctx context.Context, keys ...string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
	config      *CacheConfig

	// ristretto cannot enumerate keys
	keys sync.Map
}

type CacheConfig struct {
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     256 << 20,
		NumCounters: 1e6,
		BufferItems: 64,
	}
}

var _ Cache = (*RistrettoCache)(nil)

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	c := &RistrettoCache{config: config}
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	c.store = store
	return c, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	value, found := c.store.Get(key)
	if !found {
		c.keys.Delete(key)
		return nil, false
	}

	data, ok := value.([]byte)
	return data, ok
}

// Set applies the write before returning so a following Get observes it.
func (c *RistrettoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	cost := int64(len(value))
	if cost == 0 {
		cost = 1
	}

	if !c.store.SetWithTTL(key, value, cost, ttl) {
		return false
	}
	c.store.Wait()
	c.keys.Store(key, struct{}{})
	return true
}

func (c *RistrettoCache) Delete(ctx context.Context, keys ...string) {
	if ctx.Err() != nil {
		return
	}

	for _, key := range keys {
		c.store.Del(key)
		c.keys.Delete(key)
	}
}

// GetOrSet loads a missing key once per concurrent burst of callers.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]byte), nil
}

// Keys matches with path.Match glob semantics, close enough to redis KEYS
// for the prefix patterns used here.
func (c *RistrettoCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]string, 0)
	c.keys.Range(func(k, _ any) bool {
		key := k.(string)
		if _, found := c.store.Get(key); !found {
			c.keys.Delete(key)
			return true
		}
		if ok, _ := path.Match(pattern, key); ok {
			result = append(result, key)
		}
		return true
	})

	return result, nil
}

func (c *RistrettoCache) Close() {
	c.store.Close()
}
