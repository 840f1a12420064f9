// Package dto provides the read-model snapshots returned across the
// application boundary. A snapshot is a flattened, serializable projection
// of an aggregate's current state, distinct from the aggregate itself: it
// is what use cases hand to transports and what the active-orders cache
// stores.
package dto

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderItemDTO is the snapshot of a single line item.
type OrderItemDTO struct {
	ID          *int64  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderDTO is the snapshot of an order aggregate. Status carries the
// lowercase lifecycle name; amounts are rounded to two decimals.
type OrderDTO struct {
	ID          *int64         `json:"id"`
	ClientName  string         `json:"client_name"`
	Status      string         `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	Items       []OrderItemDTO `json:"items"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

// OrderFromDomain projects an aggregate into its snapshot.
func OrderFromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, orderItemFromDomain(item))
	}

	var id *int64
	if o.ID() != nil {
		value := o.ID().Value()
		id = &value
	}

	return OrderDTO{
		ID:          id,
		ClientName:  o.ClientName(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().Float64(),
		Items:       itemDTOs,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// OrdersFromDomain projects a list of aggregates, preserving order.
func OrdersFromDomain(orders []*order.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, OrderFromDomain(o))
	}
	return dtos
}

func orderItemFromDomain(item *order.Item) OrderItemDTO {
	var id *int64
	if item.ID() != nil {
		value := *item.ID()
		id = &value
	}

	return OrderItemDTO{
		ID:          id,
		Description: item.Description(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Float64(),
		TotalPrice:  item.TotalPrice().Float64(),
	}
}
