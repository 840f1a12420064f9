package queries

import (
	"context"
	"log/slog"

	"orders/internal/core/application/dto"
	"orders/internal/core/ports"
)

// GetActiveOrdersQueryHandler serves the active-orders view through the
// cache. On a hit the repository is never touched; on a miss the view is
// rebuilt from storage and cached under the fixed key with the fixed TTL.
// Writers invalidate the same key after commit, so the view is at most one
// TTL behind the source of truth even when an invalidation is lost.
type GetActiveOrdersQueryHandler struct {
	repo   ports.OrderRepository
	cache  ports.ActiveOrdersCache
	logger *slog.Logger
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(
	repo ports.OrderRepository,
	cache ports.ActiveOrdersCache,
	logger *slog.Logger,
) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Handle returns the cached active-orders snapshot list, rebuilding it from
// the repository on a miss. Orders are newest-created first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]dto.OrderDTO, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.cache.Remember(ctx, ports.ActiveOrdersCacheKey, ports.ActiveOrdersCacheTTL,
		func(ctx context.Context) ([]dto.OrderDTO, error) {
			h.logger.DebugContext(ctx, "fetching active orders from repository")

			orders, err := h.repo.GetAllActive(ctx)
			if err != nil {
				return nil, err
			}
			return dto.OrdersFromDomain(orders), nil
		})
}
