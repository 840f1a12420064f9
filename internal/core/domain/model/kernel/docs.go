// Package kernel provides shared domain value objects used across the
// order management model.
//
// The package includes:
//   - Money: an immutable decimal currency amount with a same-currency
//     invariant on arithmetic and half-even rounding for display
//   - OrderID: the numeric identity assigned to an order on first insert
//
// Both types follow the value object rules of the domain model: they are
// immutable, compared by value, and invalid states are unrepresentable
// outside of the zero value, which fails Validate().
package kernel
