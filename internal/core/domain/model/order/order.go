package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, Create, or RestoreOrder")

	// ErrIDAlreadyAssigned indicates an attempt to reassign a persistence
	// identity. Identity is assigned exactly once, on first save; any later
	// attempt is a programming error in the caller.
	ErrIDAlreadyAssigned = errors.New("identity cannot be changed once assigned")
)

const maxClientNameLength = 255

// ItemData carries the raw line item values the Create factory turns into
// validated Item entities.
type ItemData struct {
	Description string
	Quantity    int
	UnitPrice   kernel.Money
}

// Order is the aggregate root for a restaurant order. It owns its line
// items, its lifecycle status, and a derived total amount.
//
// Order maintains these invariants:
//   - clientName is non-empty and at most 255 characters
//   - totalAmount always equals the sum of the current items' total prices,
//     recomputed synchronously after every item mutation
//   - identity is assigned at most once and never reassigned
//   - status only moves forward through the Status transition table
//
// The struct uses private fields to ensure encapsulation; all mutations
// flow through validated methods.
type Order struct {
	// id is the persistence identity, nil until the order is first saved
	id *kernel.OrderID

	clientName  string
	status      Status
	items       []*Item
	totalAmount kernel.Money

	createdAt time.Time
	updatedAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an order from already-constructed items. The order
// starts in Initiated status with no identity and a freshly computed total.
// A zero-item order is valid.
func NewOrder(clientName string, items []*Item) (*Order, error) {
	o := &Order{
		status:        Initiated,
		totalAmount:   kernel.Zero(kernel.DefaultCurrency),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := o.setClientName(clientName); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		o.items = append(o.items, item)
	}

	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Create builds a fully validated order from a client name and raw item
// data. This is the factory the create use case goes through.
func Create(clientName string, itemsData []ItemData) (*Order, error) {
	items := make([]*Item, 0, len(itemsData))
	for _, data := range itemsData {
		item, err := NewItem(data.Description, data.Quantity, data.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return NewOrder(clientName, items)
}

// RestoreOrder reconstructs a persisted order, including identity, status,
// and timestamps. Used by repository implementations when rehydrating from
// storage; the total is recomputed from the restored items rather than
// trusted from the stored row.
func RestoreOrder(
	id kernel.OrderID,
	clientName string,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o, err := NewOrder(clientName, items)
	if err != nil {
		return nil, err
	}

	o.id = &id
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their persistence identity.
// Orders without an identity are never equal to anything.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != nil && other.id != nil && o.id.IsEqual(*other.id)
}

// ID returns the persistence identity, nil until the order is first saved.
func (o *Order) ID() *kernel.OrderID {
	return o.id
}

// ClientName returns the name of the client the order belongs to.
func (o *Order) ClientName() string {
	return o.clientName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the current line items. The returned slice is a copy;
// the items themselves are owned by the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the derived total, always equal to the sum of the
// current items' total prices.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the construction timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation, nil if the order
// has never been mutated since creation.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// AddItem appends a line item and synchronously recomputes the total.
// If the recomputation fails (currency mismatch with existing items) the
// order is left unchanged.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	if err := o.recalculateTotal(); err != nil {
		o.items = o.items[:len(o.items)-1]
		return err
	}

	o.touch()
	return nil
}

// RemoveItem removes the line item at the given zero-based index and
// recomputes the total. Fails when the index does not exist; the item
// list and total are left unchanged in that case.
func (o *Order) RemoveItem(index int) error {
	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(o.items)-1)
	}

	removed := o.items[index]
	o.items = append(o.items[:index], o.items[index+1:]...)
	if err := o.recalculateTotal(); err != nil {
		o.items = append(o.items[:index], append([]*Item{removed}, o.items[index:]...)...)
		return err
	}

	o.touch()
	return nil
}

// AdvanceStatus moves the order to the next lifecycle status.
// Fails with ErrInvalidStatusTransition when the status is terminal,
// leaving the status unchanged.
func (o *Order) AdvanceStatus() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// CanAdvanceStatus reports whether AdvanceStatus would succeed.
func (o *Order) CanAdvanceStatus() bool {
	return o.status.CanAdvance()
}

// AssignID sets the persistence identity exactly once, on first save.
// Fails with ErrIDAlreadyAssigned on any later attempt.
func (o *Order) AssignID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != nil {
		return ErrIDAlreadyAssigned
	}

	o.id = &id
	return nil
}

// IsActive reports whether the order is still in flight (not Delivered).
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// IsDelivered reports whether the order reached its terminal status.
func (o *Order) IsDelivered() bool {
	return o.status.IsDelivered()
}

// HasItems reports whether the order has at least one line item.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	if len(clientName) > maxClientNameLength {
		return errs.NewValueIsOutOfRangeError("clientName", clientName, 1, maxClientNameLength)
	}

	o.clientName = clientName
	return nil
}

// recalculateTotal folds over all items. O(items) on every mutation;
// item counts are small and the fold keeps the invariant trivially true.
func (o *Order) recalculateTotal() error {
	currency := kernel.DefaultCurrency
	if len(o.items) > 0 {
		currency = o.items[0].UnitPrice().Currency()
	}

	total := kernel.Zero(currency)
	for _, item := range o.items {
		var err error
		total, err = total.Add(item.TotalPrice())
		if err != nil {
			return err
		}
	}

	o.totalAmount = total
	return nil
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}
