package service

import (
	"github.com/google/uuid"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type CategoryService interface {
	Create(name, description string) (*model.Category, error)
	GetOne(id uuid.UUID) (*model.Category, error)
	Update(id uuid.UUID, patch model.CategoryPatch) (*model.Category, error)
	Delete(id uuid.UUID) error
	List(p model.Pageable) (model.Page[model.Category], error)
}

func NewCategoryService(repo model.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

type categoryService struct {
	repo model.CategoryRepository
}

func (s *categoryService) Create(name, description string) (*model.Category, error) {
	if _, err := s.repo.FindActiveByName(name); err == nil {
		return nil, model.ErrCategoryAlreadyExists
	}

	return s.repo.Save(&model.Category{Name: name, Description: description})
}

func (s *categoryService) GetOne(id uuid.UUID) (*model.Category, error) {
	return s.repo.FindActive(id)
}

func (s *categoryService) Update(id uuid.UUID, patch model.CategoryPatch) (*model.Category, error) {
	category, err := s.repo.FindActive(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		existing, err := s.repo.FindActiveByName(*patch.Name)
		if err == nil && existing.ID != id {
			return nil, model.ErrCategoryAlreadyExists
		}
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}

	return s.repo.Save(category)
}

func (s *categoryService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *categoryService) List(p model.Pageable) (model.Page[model.Category], error) {
	return s.repo.ListActive(p)
}
