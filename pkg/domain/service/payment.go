package service

import (
	"github.com/google/uuid"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type PaymentService interface {
	// Create records a settlement for the order, copying the order's
	// current total amount.
	Create(userID, orderID uuid.UUID, method model.PaymentMethod) (*model.Payment, error)
	GetOne(id uuid.UUID) (*model.Payment, error)
	Delete(id uuid.UUID) error
	List(p model.Pageable) (model.Page[model.Payment], error)
	ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Payment], error)
}

func NewPaymentService(repo model.PaymentRepository, users model.UserRepository, orders model.OrderRepository) PaymentService {
	return &paymentService{repo: repo, users: users, orders: orders}
}

type paymentService struct {
	repo   model.PaymentRepository
	users  model.UserRepository
	orders model.OrderRepository
}

func (s *paymentService) Create(userID, orderID uuid.UUID, method model.PaymentMethod) (*model.Payment, error) {
	if _, err := s.users.FindActive(userID); err != nil {
		return nil, err
	}
	order, err := s.orders.FindActive(orderID)
	if err != nil {
		return nil, err
	}

	return s.repo.Save(&model.Payment{
		OrderID: orderID,
		UserID:  userID,
		Method:  method,
		Amount:  order.TotalAmount,
	})
}

func (s *paymentService) GetOne(id uuid.UUID) (*model.Payment, error) {
	return s.repo.FindActive(id)
}

func (s *paymentService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *paymentService) List(p model.Pageable) (model.Page[model.Payment], error) {
	return s.repo.ListActive(p)
}

func (s *paymentService) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Payment], error) {
	if _, err := s.users.FindActive(userID); err != nil {
		return model.Page[model.Payment]{}, err
	}
	return s.repo.ListByUser(userID, p)
}
