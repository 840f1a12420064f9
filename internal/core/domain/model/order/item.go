package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

const maxDescriptionLength = 255

// Item is a line item owned by an Order: a description, a quantity, and a
// unit price. Its total price is always derived from the current quantity
// and unit price, never stored.
//
// Items have no lifecycle of their own; all mutations flow through the
// owning Order so the aggregate can keep its total consistent.
type Item struct {
	// id is the persistence identity, nil until the owning order is saved
	id *int64

	description string
	quantity    int
	unitPrice   kernel.Money

	isConstructed bool
}

// NewItem creates a line item with validation.
//
// The description must be non-empty and at most 255 characters, the
// quantity must be at least 1, and the unit price must be a constructed
// Money value.
func NewItem(description string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a persisted line item, including its identity.
// Used by repository implementations when rehydrating an order.
func RestoreItem(id int64, description string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item, err := NewItem(description, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err := item.AssignID(id); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the persistence identity, nil until the item is persisted.
func (i *Item) ID() *int64 {
	return i.id
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the item quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price times quantity, recomputed on demand.
func (i *Item) TotalPrice() kernel.Money {
	// quantity is validated positive, so Multiply cannot fail
	total, _ := i.unitPrice.Multiply(i.quantity)
	return total
}

// AssignID sets the persistence identity exactly once.
// Fails with ErrIDAlreadyAssigned on any later attempt.
func (i *Item) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if i.id != nil {
		return ErrIDAlreadyAssigned
	}

	i.id = &id
	return nil
}

// ChangeQuantity replaces the quantity, re-validating positivity.
// The owning order is responsible for recomputing its total afterwards.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// ChangePrice replaces the unit price.
// The owning order is responsible for recomputing its total afterwards.
func (i *Item) ChangePrice(price kernel.Money) error {
	return i.setUnitPrice(price)
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, maxDescriptionLength)
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}
