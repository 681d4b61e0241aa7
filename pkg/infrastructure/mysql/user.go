package mysql

import (
	"github.com/jmoiron/sqlx"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

const userUpsert = `
INSERT INTO users (id, created_at, deleted, full_name, username, email, address, user_role)
VALUES (:id, :created_at, :deleted, :full_name, :username, :email, :address, :user_role)
ON DUPLICATE KEY UPDATE
    full_name = VALUES(full_name),
    username  = VALUES(username),
    email     = VALUES(email),
    address   = VALUES(address),
    user_role = VALUES(user_role),
    deleted   = VALUES(deleted)`

type UserStore struct {
	*Store[model.User]
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{Store: NewStore[model.User](db, "users", model.ErrUserNotFound)}
}

func (s *UserStore) Save(u *model.User) (*model.User, error) {
	return s.save(u, userUpsert)
}

func (s *UserStore) FindActiveByUsername(username string) (*model.User, error) {
	return s.findOneActive(clause{expr: "username = ?", args: []any{username}})
}

func (s *UserStore) FindActiveByEmail(email string) (*model.User, error) {
	return s.findOneActive(clause{expr: "email = ?", args: []any{email}})
}
