package tests

import (
	"time"

	"github.com/google/uuid"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
)

type hasBase interface {
	Base() *model.Entity
}

// memRepo is an in-memory stand-in for the soft-delete store. It hands
// out copies, like a real store re-reading rows, so held pointers never
// alias the stored state.
type memRepo[T any] struct {
	rows     map[uuid.UUID]*T
	inserted []uuid.UUID
	notFound error
}

func newMemRepo[T any](notFound error) *memRepo[T] {
	return &memRepo[T]{rows: make(map[uuid.UUID]*T), notFound: notFound}
}

func base[T any](row *T) *model.Entity {
	return any(row).(hasBase).Base()
}

func (m *memRepo[T]) Save(e *T) (*T, error) {
	b := base(e)
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
		b.CreatedAt = time.Now().UTC()
	}
	if _, ok := m.rows[b.ID]; !ok {
		m.inserted = append(m.inserted, b.ID)
	}
	cp := *e
	m.rows[b.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memRepo[T]) Find(id uuid.UUID) (*T, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, m.notFound
	}
	cp := *row
	return &cp, nil
}

func (m *memRepo[T]) FindActive(id uuid.UUID) (*T, error) {
	row, ok := m.rows[id]
	if !ok || base(row).Deleted {
		return nil, m.notFound
	}
	cp := *row
	return &cp, nil
}

func (m *memRepo[T]) Trash(id uuid.UUID) (*T, error) {
	row, ok := m.rows[id]
	if !ok || base(row).Deleted {
		return nil, m.notFound
	}
	base(row).Deleted = true
	cp := *row
	return &cp, nil
}

func (m *memRepo[T]) TrashMany(ids []uuid.UUID) ([]*T, error) {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		e, err := m.Trash(id)
		if err != nil {
			out = append(out, nil)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memRepo[T]) ListAllActive() ([]T, error) {
	rows := make([]T, 0)
	for _, row := range m.active() {
		rows = append(rows, *row)
	}
	return rows, nil
}

func (m *memRepo[T]) ListActive(p model.Pageable) (model.Page[T], error) {
	return m.page(func(*T) bool { return true }, p)
}

func (m *memRepo[T]) active() []*T {
	rows := make([]*T, 0, len(m.inserted))
	for _, id := range m.inserted {
		row := m.rows[id]
		if !base(row).Deleted {
			rows = append(rows, row)
		}
	}
	return rows
}

func (m *memRepo[T]) page(match func(*T) bool, p model.Pageable) (model.Page[T], error) {
	matched := make([]T, 0)
	for _, row := range m.active() {
		if match(row) {
			matched = append(matched, *row)
		}
	}
	total := int64(len(matched))
	start := p.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return model.NewPage(matched[start:end], p, total), nil
}

type memUserRepo struct {
	*memRepo[model.User]
}

func (m *memUserRepo) FindActiveByUsername(username string) (*model.User, error) {
	for _, u := range m.active() {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (m *memUserRepo) FindActiveByEmail(email string) (*model.User, error) {
	for _, u := range m.active() {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

type memCategoryRepo struct {
	*memRepo[model.Category]
}

func (m *memCategoryRepo) FindActiveByName(name string) (*model.Category, error) {
	for _, c := range m.active() {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, model.ErrCategoryNotFound
}

type memProductRepo struct {
	*memRepo[model.Product]
}

type memOrderRepo struct {
	*memRepo[model.Order]
}

func (m *memOrderRepo) List(f model.OrderFilter, p model.Pageable) (model.Page[model.Order], error) {
	return m.page(f.Matches, p)
}

func (m *memOrderRepo) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Order], error) {
	return m.page(func(o *model.Order) bool { return o.UserID == userID }, p)
}

type memOrderItemRepo struct {
	*memRepo[model.OrderItem]
}

func (m *memOrderItemRepo) FindActiveByOrder(orderID uuid.UUID) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	for _, item := range m.active() {
		if item.OrderID == orderID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *memOrderItemRepo) FindActiveByProduct(productID uuid.UUID) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	for _, item := range m.active() {
		if item.ProductID == productID {
			items = append(items, *item)
		}
	}
	return items, nil
}

type memPaymentRepo struct {
	*memRepo[model.Payment]
}

func (m *memPaymentRepo) ListByUser(userID uuid.UUID, p model.Pageable) (model.Page[model.Payment], error) {
	return m.page(func(pay *model.Payment) bool { return pay.UserID == userID }, p)
}

// env wires every service against the in-memory repos, mirroring the
// wiring in cmd/ordertask.
type env struct {
	users      *memUserRepo
	categories *memCategoryRepo
	products   *memProductRepo
	orders     *memOrderRepo
	orderItems *memOrderItemRepo
	payments   *memPaymentRepo

	userService      service.UserService
	categoryService  service.CategoryService
	productService   service.ProductService
	orderService     service.OrderService
	orderItemService service.OrderItemService
	paymentService   service.PaymentService
}

func newEnv() *env {
	e := &env{
		users:      &memUserRepo{newMemRepo[model.User](model.ErrUserNotFound)},
		categories: &memCategoryRepo{newMemRepo[model.Category](model.ErrCategoryNotFound)},
		products:   &memProductRepo{newMemRepo[model.Product](model.ErrProductNotFound)},
		orders:     &memOrderRepo{newMemRepo[model.Order](model.ErrOrderNotFound)},
		orderItems: &memOrderItemRepo{newMemRepo[model.OrderItem](model.ErrOrderItemNotFound)},
		payments:   &memPaymentRepo{newMemRepo[model.Payment](model.ErrPaymentNotFound)},
	}

	e.userService = service.NewUserService(e.users)
	e.categoryService = service.NewCategoryService(e.categories)
	e.productService = service.NewProductService(e.products, e.categories, e.orderItems, e.orders)
	e.orderItemService = service.NewOrderItemService(e.orderItems, e.orders, e.products, e.users)
	e.paymentService = service.NewPaymentService(e.payments, e.users, e.orders)
	e.orderService = service.NewOrderService(e.orders, e.users, e.orderItems, e.orderItemService, e.paymentService)
	return e
}
