package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

type OrderService interface {
	// Create runs the order workflow: verify the user, persist a
	// PENDING order shell, create every line item, validate the
	// payment method and record the payment. The steps are independent
	// writes; a failure partway leaves the earlier side effects in
	// place and surfaces the error unchanged.
	Create(userID uuid.UUID, items []model.LineItem, paymentMethod string) (*model.OrderDetails, error)
	GetOne(id uuid.UUID) (*model.OrderDetails, error)
	Delete(id uuid.UUID) error
	// Cancel is allowed for the owner of a PENDING order only.
	Cancel(id, userID uuid.UUID) error
	// ChangeStatus overwrites the order status. A CANCELLED order can
	// only be moved again by an ADMIN caller.
	ChangeStatus(id, userID uuid.UUID, status string) error
	List(f model.OrderFilter, p model.Pageable) (model.Page[model.OrderDetails], error)
	ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.OrderDetails], error)
}

func NewOrderService(
	repo model.OrderRepository,
	users model.UserRepository,
	items model.OrderItemRepository,
	orderItems OrderItemService,
	payments PaymentService,
) OrderService {
	return &orderService{
		repo:       repo,
		users:      users,
		items:      items,
		orderItems: orderItems,
		payments:   payments,
	}
}

type orderService struct {
	repo       model.OrderRepository
	users      model.UserRepository
	items      model.OrderItemRepository
	orderItems OrderItemService
	payments   PaymentService
}

func (s *orderService) Create(userID uuid.UUID, items []model.LineItem, paymentMethod string) (*model.OrderDetails, error) {
	if _, err := s.users.FindActive(userID); err != nil {
		return nil, err
	}

	order, err := s.repo.Save(&model.Order{
		UserID:      userID,
		Status:      model.StatusPending,
		TotalAmount: decimal.Zero,
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := s.orderItems.Create(order.ID, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	method, err := model.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}
	if _, err := s.payments.Create(userID, order.ID, method); err != nil {
		return nil, err
	}

	return s.GetOne(order.ID)
}

func (s *orderService) GetOne(id uuid.UUID) (*model.OrderDetails, error) {
	order, err := s.repo.FindActive(id)
	if err != nil {
		return nil, err
	}
	return s.enrich(order)
}

func (s *orderService) Delete(id uuid.UUID) error {
	_, err := s.repo.Trash(id)
	return err
}

func (s *orderService) Cancel(id, userID uuid.UUID) error {
	order, err := s.repo.FindActive(id)
	if err != nil {
		return err
	}
	user, err := s.users.FindActive(userID)
	if err != nil {
		return err
	}

	if order.UserID != user.ID || order.Status != model.StatusPending {
		return model.ErrBadRequest
	}

	order.Status = model.StatusCancelled
	_, err = s.repo.Save(order)
	return err
}

func (s *orderService) ChangeStatus(id, userID uuid.UUID, status string) error {
	order, err := s.repo.FindActive(id)
	if err != nil {
		return err
	}
	user, err := s.users.FindActive(userID)
	if err != nil {
		return err
	}

	if user.Role != model.RoleAdmin && order.Status == model.StatusCancelled {
		return model.ErrBadRequest
	}

	next, err := model.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	order.Status = next
	_, err = s.repo.Save(order)
	return err
}

func (s *orderService) List(f model.OrderFilter, p model.Pageable) (model.Page[model.OrderDetails], error) {
	orders, err := s.repo.List(f, p)
	if err != nil {
		return model.Page[model.OrderDetails]{}, err
	}
	return s.enrichPage(orders)
}

func (s *orderService) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.OrderDetails], error) {
	if _, err := s.users.FindActive(userID); err != nil {
		return model.Page[model.OrderDetails]{}, err
	}
	orders, err := s.repo.ListByUser(userID, p)
	if err != nil {
		return model.Page[model.OrderDetails]{}, err
	}
	return s.enrichPage(orders)
}

func (s *orderService) enrich(order *model.Order) (*model.OrderDetails, error) {
	items, err := s.items.FindActiveByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: *order, Items: items}, nil
}

func (s *orderService) enrichPage(orders model.Page[model.Order]) (model.Page[model.OrderDetails], error) {
	details := make([]model.OrderDetails, 0, len(orders.Content))
	for i := range orders.Content {
		d, err := s.enrich(&orders.Content[i])
		if err != nil {
			return model.Page[model.OrderDetails]{}, err
		}
		details = append(details, *d)
	}
	return model.Page[model.OrderDetails]{
		Content:       details,
		Page:          orders.Page,
		Size:          orders.Size,
		TotalElements: orders.TotalElements,
		TotalPages:    orders.TotalPages,
	}, nil
}
