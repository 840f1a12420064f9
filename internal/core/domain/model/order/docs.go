// Package order provides the domain model for restaurant order management:
// the Order aggregate root, its line Items, and the Status state machine.
//
// The package includes:
//   - Order: the aggregate root owning items, lifecycle status, and a
//     derived total amount
//   - Item: a line item with description, quantity, and unit price
//   - Status: a state machine enforcing the lifecycle
//     initiated -> sent -> delivered
//
// Key business rules:
//   - The total amount always equals the sum of the current items' totals,
//     recomputed synchronously after every item mutation
//   - Status only moves forward; delivered is terminal and an order that
//     reaches it is removed from storage rather than retained
//   - Persistence identity is assigned exactly once, on first save
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
