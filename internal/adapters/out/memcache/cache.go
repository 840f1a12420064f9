// Package memcache provides an in-process implementation of the
// active-orders cache. It backs local development and tests, and serves
// single-instance deployments that run without Redis.
package memcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"orders/internal/core/application/dto"
	"orders/internal/core/ports"
)

type entry struct {
	value     []dto.OrderDTO
	expiresAt time.Time
}

// Cache is a TTL map guarded by a mutex. Remember deduplicates concurrent
// cold misses through a singleflight group, so a burst of readers on an
// empty cache triggers a single repository query.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group

	// now is swappable for expiry tests
	now func() time.Time
}

// NewCache creates an empty in-process cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

var _ ports.ActiveOrdersCache = (*Cache)(nil)

// Get returns the cached value for key. Expired entries are treated as
// misses and removed on detection.
func (c *Cache) Get(_ context.Context, key string) ([]dto.OrderDTO, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

// Put stores value under key with the given TTL.
func (c *Cache) Put(_ context.Context, key string, value []dto.OrderDTO, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

// Forget removes the entry under key. Forgetting an absent key is a no-op.
func (c *Cache) Forget(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Remember returns the cached value for key or, on a miss, computes it,
// stores it with the given TTL, and returns it. Concurrent misses on the
// same key share one compute invocation.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration,
	compute func(ctx context.Context) ([]dto.OrderDTO, error)) ([]dto.OrderDTO, error) {
	if value, ok, _ := c.Get(ctx, key); ok {
		return value, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// a concurrent flight may have populated the entry already
		if value, ok, _ := c.Get(ctx, key); ok {
			return value, nil
		}

		value, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if err = c.Put(ctx, key, value, ttl); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]dto.OrderDTO), nil
}
