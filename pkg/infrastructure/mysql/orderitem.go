package mysql

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const orderItemUpsert = `
INSERT INTO order_items (id, created_at, deleted, order_id, product_id, quantity, unit_price, total_price)
VALUES (:id, :created_at, :deleted, :order_id, :product_id, :quantity, :unit_price, :total_price)
ON DUPLICATE KEY UPDATE
    order_id    = VALUES(order_id),
    product_id  = VALUES(product_id),
    quantity    = VALUES(quantity),
    unit_price  = VALUES(unit_price),
    total_price = VALUES(total_price),
    deleted     = VALUES(deleted)`

type OrderItemStore struct {
	*Store[model.OrderItem]
}

func NewOrderItemStore(db *sqlx.DB) *OrderItemStore {
	return &OrderItemStore{Store: NewStore[model.OrderItem](db, "order_items", model.ErrOrderItemNotFound)}
}

func (s *OrderItemStore) Save(item *model.OrderItem) (*model.OrderItem, error) {
	return s.save(item, orderItemUpsert)
}

func (s *OrderItemStore) FindActiveByOrder(orderID uuid.UUID) ([]model.OrderItem, error) {
	return s.selectActive(clause{expr: "order_id = ?", args: []any{orderID}})
}

func (s *OrderItemStore) FindActiveByProduct(productID uuid.UUID) ([]model.OrderItem, error) {
	return s.selectActive(clause{expr: "product_id = ?", args: []any{productID}})
}
