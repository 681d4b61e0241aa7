package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentMethod string

const (
	MethodHumo   PaymentMethod = "HUMO"
	MethodUzcard PaymentMethod = "UZCARD"
	MethodPayme  PaymentMethod = "PAYME"
	MethodCash   PaymentMethod = "CASH"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(s)) {
	case MethodHumo:
		return MethodHumo, nil
	case MethodUzcard:
		return MethodUzcard, nil
	case MethodPayme:
		return MethodPayme, nil
	case MethodCash:
		return MethodCash, nil
	default:
		return "", ErrBadRequest
	}
}

// Payment settles exactly one order. Amount copies the order total at
// creation time and is not kept in sync afterwards.
type Payment struct {
	Entity
	OrderID uuid.UUID       `db:"order_id"`
	UserID  uuid.UUID       `db:"user_id"`
	Method  PaymentMethod   `db:"payment_method"`
	Amount  decimal.Decimal `db:"amount"`
}

type PaymentRepository interface {
	Repository[Payment]
	ListByUser(userID uuid.UUID, p Pageable) (Page[Payment], error)
}
