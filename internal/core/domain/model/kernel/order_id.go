package kernel

import (
	"fmt"
	"strconv"

	"orders/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object wrapping the numeric identity the persistence
// layer assigns to an order on first insert. The zero value is invalid and
// must be constructed through NewOrderID.
//
// Identities are positive; an aggregate without an identity carries a nil
// *OrderID rather than a zero-valued one, which keeps "unassigned" and
// "invalid" distinguishable.
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID from a positive integer.
// Returns an error for zero or negative values.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return OrderID{value: value}, nil
}

// Value returns the underlying numeric identity.
func (id OrderID) Value() int64 {
	return id.value
}

// String returns the decimal string form of the identity.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identities by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was created through NewOrderID.
func (id OrderID) Validate() error {
	if id.value <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
