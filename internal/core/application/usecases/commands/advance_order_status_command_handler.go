package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/application/dto"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order one step forward in its
// lifecycle. An order that reaches the terminal Delivered status is removed
// from storage entirely; it no longer belongs to the operational dataset.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.ActiveOrdersCache
	logger     *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status
// advancement operations.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.ActiveOrdersCache,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

// Handle advances the order's status and returns a snapshot of the
// resulting state. The snapshot reflects the advanced status even when the
// order was deleted on delivery, so callers can still report what happened.
//
// Failed transitions (terminal status) surface the domain's
// ErrInvalidStatusTransition and leave the stored order untouched.
// Cache invalidation happens strictly after commit and is non-fatal.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (dto.OrderDTO, error) {
	if err := cmd.Validate(); err != nil {
		return dto.OrderDTO{}, err
	}

	orderID, err := kernel.NewOrderID(cmd.OrderID())
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

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return dto.OrderDTO{}, err
	}

	if err = aggregate.AdvanceStatus(); err != nil {
		return dto.OrderDTO{}, err
	}

	if aggregate.IsDelivered() {
		if _, err = uow.OrderRepository().Delete(ctx, orderID); err != nil {
			return dto.OrderDTO{}, err
		}
	} else {
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return dto.OrderDTO{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return dto.OrderDTO{}, err
	}

	if err = h.cache.Forget(ctx, ports.ActiveOrdersCacheKey); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate active orders cache",
			"error", err)
	}

	if aggregate.IsDelivered() {
		h.logger.InfoContext(ctx, "order delivered and removed",
			"order_id", orderID.String(),
			"client_name", aggregate.ClientName(),
			"final_status", aggregate.Status().String())
	} else {
		h.logger.InfoContext(ctx, "order status advanced",
			"order_id", orderID.String(),
			"new_status", aggregate.Status().String())
	}

	return dto.OrderFromDomain(aggregate), nil
}
