// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status column is indexed for the active-orders query.
// Timestamps come from the domain, not from GORM's auto-tracking.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ClientName  string          `gorm:"size:255;not null"`
	Status      string          `gorm:"size:32;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line item row belonging to an order.
type OrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	Description string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Items without an identity map to zero IDs and get one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	var id int64
	if aggregate.ID() != nil {
		id = aggregate.ID().Value()
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(id, item))
	}

	return OrderDTO{
		ID:          id,
		ClientName:  aggregate.ClientName(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().Amount(),
		Currency:    aggregate.TotalAmount().Currency(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       itemDTOs,
	}
}

func itemFromDomain(orderID int64, item *order.Item) OrderItemDTO {
	var id int64
	if item.ID() != nil {
		id = *item.ID()
	}

	return OrderItemDTO{
		ID:          id,
		OrderID:     orderID,
		Description: item.Description(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Amount(),
		Currency:    item.UnitPrice().Currency(),
	}
}

// toDomain converts a database row to an order aggregate. The total is
// recomputed from the restored items by RestoreOrder rather than read from
// the stored column.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice, itemDTO.Currency)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreItem(itemDTO.ID, itemDTO.Description, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.ClientName, status, items, dto.CreatedAt, dto.UpdatedAt)
}
