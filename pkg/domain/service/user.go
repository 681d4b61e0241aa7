package service

import (
	"github.com/google/uuid"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type UserService interface {
	Create(fullName, username, email, address, role string) (*model.User, error)
	GetOne(id uuid.UUID) (*model.User, error)
	Update(id uuid.UUID, patch model.UserPatch) (*model.User, error)
	Delete(id uuid.UUID) error
	List(p model.Pageable) (model.Page[model.User], error)
}

func NewUserService(repo model.UserRepository) UserService {
	return &userService{repo: repo}
}

type userService struct {
	repo model.UserRepository
}

func (s *userService) Create(fullName, username, email, address, role string) (*model.User, error) {
	validRole, err := model.ParseUserRole(role)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindActiveByUsername(username); err == nil {
		return nil, model.ErrUserAlreadyExists
	}
	if _, err := s.repo.FindActiveByEmail(email); err == nil {
		return nil, model.ErrUserAlreadyExists
	}

	return s.repo.Save(&model.User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Address:  address,
		Role:     validRole,
	})
}

func (s *userService) GetOne(id uuid.UUID) (*model.User, error) {
	return s.repo.FindActive(id)
}

func (s *userService) Update(id uuid.UUID, patch model.UserPatch) (*model.User, error) {
	user, err := s.repo.FindActive(id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		existing, err := s.repo.FindActiveByUsername(*patch.Username)
		if err == nil && existing.ID != id {
			return nil, model.ErrUserAlreadyExists
		}
		user.Username = *patch.Username
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}

	return s.repo.Save(user)
}

func (s *userService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *userService) List(p model.Pageable) (model.Page[model.User], error) {
	return s.repo.ListActive(p)
}
