package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/application/dto"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the aggregate through the domain factory, persists it inside a
// unit of work (which assigns the identity), and invalidates the
// active-orders cache so the next list read repopulates it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.ActiveOrdersCache
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.ActiveOrdersCache,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns a snapshot of
// the persisted aggregate, identity included.
//
// The cache invalidation happens strictly after the transaction commits,
// so a concurrent reader can never repopulate the cache from state older
// than this write and keep it past the write. Invalidation failure is
// non-fatal: the source of truth is already correct and the TTL bounds
// the staleness window.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (dto.OrderDTO, error) {
	if err := cmd.Validate(); err != nil {
		return dto.OrderDTO{}, err
	}

	itemsData := make([]order.ItemData, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		unitPrice, err := kernel.NewMoneyFromFloat(input.UnitPrice, kernel.DefaultCurrency)
		if err != nil {
			return dto.OrderDTO{}, err
		}
		itemsData = append(itemsData, order.ItemData{
			Description: input.Description,
			Quantity:    input.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	aggregate, err := order.Create(cmd.ClientName(), itemsData)
	if err != nil {
		return dto.OrderDTO{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return dto.OrderDTO{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return dto.OrderDTO{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return dto.OrderDTO{}, err
	}

	if err = h.cache.Forget(ctx, ports.ActiveOrdersCacheKey); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate active orders cache",
			"error", err)
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", aggregate.ID().String(),
		"client_name", aggregate.ClientName(),
		"total_amount", aggregate.TotalAmount().Float64())

	return dto.OrderFromDomain(aggregate), nil
}
