package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves a single order by its identity. Reads
// storage directly; the single-order lookup is not cached.
type GetOrderByIDQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order lookup.
// Validates that the order ID is a positive identifier.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	if orderID <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
