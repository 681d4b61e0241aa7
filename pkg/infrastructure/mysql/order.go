package mysql

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const orderUpsert = `
INSERT INTO orders (id, created_at, deleted, user_id, order_status, total_amount)
VALUES (:id, :created_at, :deleted, :user_id, :order_status, :total_amount)
ON DUPLICATE KEY UPDATE
    user_id      = VALUES(user_id),
    order_status = VALUES(order_status),
    total_amount = VALUES(total_amount),
    deleted      = VALUES(deleted)`

type OrderStore struct {
	*Store[model.Order]
}

func NewOrderStore(db *sqlx.DB) *OrderStore {
	return &OrderStore{Store: NewStore[model.Order](db, "orders", model.ErrOrderNotFound)}
}

func (s *OrderStore) Save(o *model.Order) (*model.Order, error) {
	return s.save(o, orderUpsert)
}

func (s *OrderStore) List(f model.OrderFilter, p model.Pageable) (model.Page[model.Order], error) {
	where := byUser(f.UserID).
		and(createdBetween(f.CreatedFrom, f.CreatedTo)).
		and(notDeleted())
	return s.list(where, p)
}

func (s *OrderStore) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Order], error) {
	return s.list(byUser(&userID).and(notDeleted()), p)
}
