package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("product has not enough stock")
)

type Product struct {
	Entity
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	StockCount  int             `db:"stock_count"`
	CategoryID  uuid.UUID       `db:"category_id"`
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	StockCount  *int
	CategoryID  *uuid.UUID
}

// ProductUserCount is the aggregation row for "how many distinct users
// have ordered this product".
type ProductUserCount struct {
	ProductID   uuid.UUID
	ProductName string
	UserCount   int
}

type ProductRepository interface {
	Repository[Product]
}
