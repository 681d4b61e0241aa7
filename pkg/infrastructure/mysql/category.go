package mysql

import (
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const categoryUpsert = `
INSERT INTO categories (id, created_at, deleted, name, description)
VALUES (:id, :created_at, :deleted, :name, :description)
ON DUPLICATE KEY UPDATE
    name        = VALUES(name),
    description = VALUES(description),
    deleted     = VALUES(deleted)`

type CategoryStore struct {
	*Store[model.Category]
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{Store: NewStore[model.Category](db, "categories", model.ErrCategoryNotFound)}
}

func (s *CategoryStore) Save(c *model.Category) (*model.Category, error) {
	return s.save(c, categoryUpsert)
}

func (s *CategoryStore) FindActiveByName(name string) (*model.Category, error) {
	return s.findOneActive(clause{expr: "name = ?", args: []any{name}})
}
