package model

import "errors"

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type Category struct {
	Entity
	Name        string `db:"name"`
	Description string `db:"description"`
}

type CategoryPatch struct {
	Name        *string
	Description *string
}

type CategoryRepository interface {
	Repository[Category]
	FindActiveByName(name string) (*Category, error)
}
