package ports

import (
	"context"
	"time"

	"orders/internal/core/application/dto"
)

const (
	// ActiveOrdersCacheKey is the single key under which the active-orders
	// view is cached. Existing deployments rely on this exact key.
	ActiveOrdersCacheKey = "active_orders"

	// ActiveOrdersCacheTTL bounds how stale the cached view may get after a
	// missed invalidation.
	ActiveOrdersCacheTTL = 30 * time.Second
)

// ActiveOrdersCache is the cache-aside port for the active-orders read
// model. Entries are idempotent pure functions of repository state, so the
// classic two-concurrent-misses race is tolerated: either write wins with
// equivalent content, and the TTL bounds staleness either way.
type ActiveOrdersCache interface {
	// Get returns the cached snapshot list for key.
	// The second result is false on a miss or an expired entry.
	Get(ctx context.Context, key string) ([]dto.OrderDTO, bool, error)

	// Put stores the snapshot list under key with the given TTL.
	Put(ctx context.Context, key string, value []dto.OrderDTO, ttl time.Duration) error

	// Forget removes the entry under key. Forgetting an absent key is a
	// no-op, not an error.
	Forget(ctx context.Context, key string) error

	// Remember returns the cached value for key or, on a miss, invokes
	// compute, stores the result with the given TTL, and returns it.
	// Callers never observe a half-populated entry.
	Remember(ctx context.Context, key string, ttl time.Duration,
		compute func(ctx context.Context) ([]dto.OrderDTO, error)) ([]dto.OrderDTO, error)
}
