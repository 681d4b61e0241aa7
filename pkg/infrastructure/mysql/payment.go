package mysql

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const paymentUpsert = `
INSERT INTO payments (id, created_at, deleted, order_id, user_id, payment_method, amount)
VALUES (:id, :created_at, :deleted, :order_id, :user_id, :payment_method, :amount)
ON DUPLICATE KEY UPDATE
    order_id       = VALUES(order_id),
    user_id        = VALUES(user_id),
    payment_method = VALUES(payment_method),
    amount         = VALUES(amount),
    deleted        = VALUES(deleted)`

type PaymentStore struct {
	*Store[model.Payment]
}

func NewPaymentStore(db *sqlx.DB) *PaymentStore {
	return &PaymentStore{Store: NewStore[model.Payment](db, "payments", model.ErrPaymentNotFound)}
}

func (s *PaymentStore) Save(p *model.Payment) (*model.Payment, error) {
	return s.save(p, paymentUpsert)
}

func (s *PaymentStore) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Payment], error) {
	return s.list(byUser(&userID).and(notDeleted()), p)
}
