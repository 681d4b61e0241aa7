package model

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrBadRequest        = errors.New("bad request")
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(s)) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrBadRequest
	}
}

type User struct {
	Entity
	FullName string   `db:"full_name"`
	Username string   `db:"username"`
	Email    string   `db:"email"`
	Address  string   `db:"address"`
	Role     UserRole `db:"user_role"`
}

// UserPatch carries a partial update: only non-nil fields overwrite.
type UserPatch struct {
	FullName *string
	Username *string
	Email    *string
	Address  *string
}

type UserRepository interface {
	Repository[User]
	FindActiveByUsername(username string) (*User, error)
	FindActiveByEmail(email string) (*User, error)
}
