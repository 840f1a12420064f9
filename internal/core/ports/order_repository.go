package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, querying, and removing orders.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and assigns the
	// generated identity back onto the aggregate and its items.
	// The order must be valid and must not carry an identity yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The aggregate row and its item rows are written together.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identity, items included.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllActive retrieves every order whose status is not delivered,
	// newest-created first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order's persisted record and its items.
	// Returns false when no record existed. Hard removal: an order that
	// reaches delivered status leaves no row behind.
	Delete(ctx context.Context, id kernel.OrderID) (bool, error)
}
