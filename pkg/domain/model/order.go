package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusFinished  OrderStatus = "FINISHED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusFinished:
		return StatusFinished, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrBadRequest
	}
}

type Order struct {
	Entity
	UserID      uuid.UUID       `db:"user_id"`
	Status      OrderStatus     `db:"order_status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}

// LineItem is one {product, quantity} pair of an order-creation request.
type LineItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderDetails is an order enriched with its active items.
type OrderDetails struct {
	Order Order
	Items []OrderItem
}

// OrderFilter composes the optional listing predicates. A zero filter
// matches every order; set fields narrow the match with logical AND.
// Both creation-window bounds are inclusive.
type OrderFilter struct {
	UserID      *uuid.UUID
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f OrderFilter) Matches(o *Order) bool {
	if f.UserID != nil && o.UserID != *f.UserID {
		return false
	}
	if f.CreatedFrom != nil && o.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && o.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

type OrderRepository interface {
	Repository[Order]
	// List returns active orders matching the filter; deleted rows are
	// excluded unconditionally.
	List(f OrderFilter, p Pageable) (Page[Order], error)
	ListByUser(userID uuid.UUID, p Pageable) (Page[Order], error)
}
