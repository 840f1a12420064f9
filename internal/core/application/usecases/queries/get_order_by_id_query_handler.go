package queries

import (
	"context"
	"log/slog"

	"orders/internal/core/application/dto"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// GetOrderByIDQueryHandler fetches one order straight from storage.
type GetOrderByIDQueryHandler struct {
	repo   ports.OrderRepository
	logger *slog.Logger
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
func NewGetOrderByIDQueryHandler(repo ports.OrderRepository, logger *slog.Logger) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{repo: repo, logger: logger}
}

// Handle returns the order's snapshot. Propagates the repository's
// errs.ObjectNotFoundError when no such order exists.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (dto.OrderDTO, error) {
	if err := query.Validate(); err != nil {
		return dto.OrderDTO{}, err
	}

	orderID, err := kernel.NewOrderID(query.OrderID())
	if err != nil {
		return dto.OrderDTO{}, err
	}

	aggregate, err := h.repo.Get(ctx, orderID)
	if err != nil {
		return dto.OrderDTO{}, err
	}

	h.logger.DebugContext(ctx, "order fetched", "order_id", orderID.String())
	return dto.OrderFromDomain(aggregate), nil
}
