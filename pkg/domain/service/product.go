package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type ProductService interface {
	Create(name, description string, price decimal.Decimal, stockCount int, categoryID uuid.UUID) (*model.Product, error)
	GetOne(id uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, patch model.ProductPatch) (*model.Product, error)
	Delete(id uuid.UUID) error
	List(p model.Pageable) (model.Page[model.Product], error)
	// UserCountForProduct counts the distinct users that ordered the
	// product, derived from its active order items. The product itself
	// is resolved by raw identifier so a trashed product still reports
	// its historical buyers.
	UserCountForProduct(productID uuid.UUID, p model.Pageable) (model.Page[model.ProductUserCount], error)
}

func NewProductService(
	repo model.ProductRepository,
	categories model.CategoryRepository,
	orderItems model.OrderItemRepository,
	orders model.OrderRepository,
) ProductService {
	return &productService{
		repo:       repo,
		categories: categories,
		orderItems: orderItems,
		orders:     orders,
	}
}

type productService struct {
	repo       model.ProductRepository
	categories model.CategoryRepository
	orderItems model.OrderItemRepository
	orders     model.OrderRepository
}

func (s *productService) Create(name, description string, price decimal.Decimal, stockCount int, categoryID uuid.UUID) (*model.Product, error) {
	if _, err := s.categories.FindActive(categoryID); err != nil {
		return nil, err
	}

	return s.repo.Save(&model.Product{
		Name:        name,
		Description: description,
		Price:       price,
		StockCount:  stockCount,
		CategoryID:  categoryID,
	})
}

func (s *productService) GetOne(id uuid.UUID) (*model.Product, error) {
	return s.repo.FindActive(id)
}

func (s *productService) Update(id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	product, err := s.repo.FindActive(id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		if _, err := s.categories.FindActive(*patch.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.StockCount != nil {
		product.StockCount = *patch.StockCount
	}

	return s.repo.Save(product)
}

func (s *productService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *productService) List(p model.Pageable) (model.Page[model.Product], error) {
	return s.repo.ListActive(p)
}

func (s *productService) UserCountForProduct(productID uuid.UUID, p model.Pageable) (model.Page[model.ProductUserCount], error) {
	product, err := s.repo.Find(productID)
	if err != nil {
		return model.Page[model.ProductUserCount]{}, err
	}

	items, err := s.orderItems.FindActiveByProduct(productID)
	if err != nil {
		return model.Page[model.ProductUserCount]{}, err
	}

	users := make(map[uuid.UUID]struct{})
	for _, item := range items {
		order, err := s.orders.Find(item.OrderID)
		if err != nil {
			continue
		}
		users[order.UserID] = struct{}{}
	}

	row := model.ProductUserCount{
		ProductID:   product.ID,
		ProductName: product.Name,
		UserCount:   len(users),
	}
	return model.NewPage([]model.ProductUserCount{row}, p, 1), nil
}
