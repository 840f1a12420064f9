// Package rediscache implements the active-orders cache on Redis. Entries
// are stored as JSON under the fixed cache key with a server-side TTL, so
// multiple application instances share one view and expiry needs no local
// sweeping.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"orders/internal/core/application/dto"
	"orders/internal/core/ports"
)

// Cache adapts a Redis client to the active-orders cache port. Remember
// deduplicates concurrent cold misses within this process; across
// processes the races are benign because every writer computes the same
// view from the source of truth.
type Cache struct {
	client *redis.Client
	group  singleflight.Group
}

// NewCache creates a cache backed by the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

var _ ports.ActiveOrdersCache = (*Cache)(nil)

// Get returns the cached snapshot list for key. Absent and expired keys
// are both reported as misses.
func (c *Cache) Get(ctx context.Context, key string) ([]dto.OrderDTO, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var value []dto.OrderDTO
	if err = json.Unmarshal(payload, &value); err != nil {
		// a corrupt entry is unreadable; drop it and report a miss
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}
	return value, true, nil
}

// Put stores the snapshot list under key with the given TTL.
func (c *Cache) Put(ctx context.Context, key string, value []dto.OrderDTO, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Forget removes the entry under key. Forgetting an absent key is a no-op.
func (c *Cache) Forget(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Remember returns the cached value for key or, on a miss, computes it,
// stores it with the given TTL, and returns it.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration,
	compute func(ctx context.Context) ([]dto.OrderDTO, error)) ([]dto.OrderDTO, error) {
	if value, ok, err := c.Get(ctx, key); err != nil {
		return nil, err
	} else if ok {
		return value, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		if value, ok, err := c.Get(ctx, key); err != nil {
			return nil, err
		} else if ok {
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
