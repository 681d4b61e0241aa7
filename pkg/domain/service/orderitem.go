package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type OrderItemService interface {
	// Create materializes one line item against an existing order. It
	// snapshots the product price, decrements the product stock and
	// adds the item total to the order's total amount.
	Create(orderID, productID uuid.UUID, quantity int) (*model.OrderItem, error)
	GetOne(id uuid.UUID) (*model.OrderItem, error)
	// Update re-resolves the product and recomputes the price snapshot;
	// it neither re-validates nor adjusts stock.
	Update(id uuid.UUID, patch model.OrderItemPatch) (*model.OrderItem, error)
	Delete(id uuid.UUID) error
	List(p model.Pageable) (model.Page[model.OrderItem], error)
}

func NewOrderItemService(
	repo model.OrderItemRepository,
	orders model.OrderRepository,
	products model.ProductRepository,
	users model.UserRepository,
) OrderItemService {
	return &orderItemService{
		repo:     repo,
		orders:   orders,
		products: products,
		users:    users,
	}
}

type orderItemService struct {
	repo     model.OrderItemRepository
	orders   model.OrderRepository
	products model.ProductRepository
	users    model.UserRepository
}

func (s *orderItemService) Create(orderID, productID uuid.UUID, quantity int) (*model.OrderItem, error) {
	if quantity < 1 {
		return nil, model.ErrBadRequest
	}

	order, err := s.orders.FindActive(orderID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindActive(productID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindActive(order.UserID); err != nil {
		return nil, err
	}

	if product.StockCount < quantity {
		return nil, model.ErrInsufficientStock
	}

	unitPrice := product.Price
	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	product.StockCount -= quantity
	if _, err := s.products.Save(product); err != nil {
		return nil, err
	}

	// Order totals are summed over all items, see DESIGN.md.
	order.TotalAmount = order.TotalAmount.Add(totalPrice)
	if _, err := s.orders.Save(order); err != nil {
		return nil, err
	}

	return s.repo.Save(&model.OrderItem{
		OrderID:    orderID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	})
}

func (s *orderItemService) GetOne(id uuid.UUID) (*model.OrderItem, error) {
	return s.repo.FindActive(id)
}

func (s *orderItemService) Update(id uuid.UUID, patch model.OrderItemPatch) (*model.OrderItem, error) {
	item, err := s.repo.FindActive(id)
	if err != nil {
		return nil, err
	}

	productID := item.ProductID
	if patch.ProductID != nil {
		productID = *patch.ProductID
	}
	product, err := s.products.FindActive(productID)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return nil, model.ErrBadRequest
		}
		item.Quantity = *patch.Quantity
	}

	item.ProductID = productID
	item.UnitPrice = product.Price
	item.TotalPrice = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

	return s.repo.Save(item)
}

func (s *orderItemService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *orderItemService) List(p model.Pageable) (model.Page[model.OrderItem], error) {
	return s.repo.ListActive(p)
}
