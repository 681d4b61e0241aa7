package mysql

import (
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const productUpsert = `
INSERT INTO products (id, created_at, deleted, name, description, price, stock_count, category_id)
VALUES (:id, :created_at, :deleted, :name, :description, :price, :stock_count, :category_id)
ON DUPLICATE KEY UPDATE
    name        = VALUES(name),
    description = VALUES(description),
    price       = VALUES(price),
    stock_count = VALUES(stock_count),
    category_id = VALUES(category_id),
    deleted     = VALUES(deleted)`

type ProductStore struct {
	*Store[model.Product]
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{Store: NewStore[model.Product](db, "products", model.ErrProductNotFound)}
}

func (s *ProductStore) Save(p *model.Product) (*model.Product, error) {
	return s.save(p, productUpsert)
}
