package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItem keeps a price snapshot: UnitPrice is the product price at
// creation (or last update) time and TotalPrice = UnitPrice * Quantity.
type OrderItem struct {
	Entity
	OrderID    uuid.UUID       `db:"order_id"`
	ProductID  uuid.UUID       `db:"product_id"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	TotalPrice decimal.Decimal `db:"total_price"`
}

type OrderItemPatch struct {
	ProductID *uuid.UUID
	Quantity  *int
}

type OrderItemRepository interface {
	Repository[OrderItem]
	FindActiveByOrder(orderID uuid.UUID) ([]OrderItem, error)
	FindActiveByProduct(productID uuid.UUID) ([]OrderItem, error)
}
