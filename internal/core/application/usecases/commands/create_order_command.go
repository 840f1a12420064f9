package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput carries the raw line item values of a create request.
// Prices are plain floats at this boundary; the handler turns them into
// Money values in the default currency.
type ItemInput struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// CreateOrderCommand represents a request to create a new order for a
// client with zero or more line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jessika", []ItemInput{
//	    {Description: "Lomo saltado", Quantity: 1, UnitPrice: 60.00},
//	    {Description: "Inka Kola", Quantity: 2, UnitPrice: 10.00},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientName string
	items      []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the client name is not empty and every item has a
// description, a positive quantity, and a non-negative unit price.
// The domain re-validates on construction; rejecting here keeps malformed
// requests from reaching the transaction at all.
func NewCreateOrderCommand(clientName string, items []ItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientName(clientName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientName returns the name of the client the order is for.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Items returns the raw line item inputs.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	for i, item := range items {
		if item.Description == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].description", i))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
		if item.UnitPrice < 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].unitPrice", i),
				fmt.Errorf("%v is negative", item.UnitPrice))
		}
	}

	c.items = items
	return nil
}
