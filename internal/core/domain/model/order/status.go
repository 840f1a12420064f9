package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when an order in a terminal status
// is asked to advance. Callers treat it as a user-facing rejection, not a
// system fault.
var ErrInvalidStatusTransition = errors.New("order status cannot advance")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Initiated ──> Sent ──> Delivered
//
// Delivered is terminal: no further transitions are allowed, and reaching
// it causes the order's persisted record to be removed.
//
// Status is the sole owner of the transition table; no other component
// encodes the sequence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Initiated is the initial status when an order is first created.
	Initiated

	// Sent indicates the order has left the kitchen and is on its way.
	Sent

	// Delivered indicates the order reached the client. This is a final
	// state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// The lowercase forms are the wire and persistence representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getStatusTransitions returns the legal transition table.
// A status absent from the map is terminal.
func getStatusTransitions() map[Status]Status {
	return map[Status]Status{
		Initiated: Sent,
		Sent:      Delivered,
	}
}

// StatusFromString parses the lowercase string form used in persistence
// and snapshots. Returns an error for anything outside the valid set.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Initiated, Sent, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanAdvance reports whether a forward transition exists from this status.
// False exactly for terminal and invalid statuses.
func (s Status) CanAdvance() bool {
	_, ok := getStatusTransitions()[s]
	return ok
}

// Next returns the status that follows this one in the lifecycle.
//
// Valid transitions:
//   - Initiated -> Sent
//   - Sent -> Delivered
//
// Fails with ErrInvalidStatusTransition when the status is terminal or
// invalid; the receiver is unchanged (Status is a value).
func (s Status) Next() (Status, error) {
	next, ok := getStatusTransitions()[s]
	if !ok {
		return Unknown, fmt.Errorf("%w from status: %s", ErrInvalidStatusTransition, s)
	}
	return next, nil
}

// IsInitiated reports whether the status is Initiated.
func (s Status) IsInitiated() bool {
	return s == Initiated
}

// IsSent reports whether the status is Sent.
func (s Status) IsSent() bool {
	return s == Sent
}

// IsDelivered reports whether the status is Delivered.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// IsActive reports whether the order is still in flight.
// True for every valid status except Delivered.
func (s Status) IsActive() bool {
	return !s.IsDelivered()
}
