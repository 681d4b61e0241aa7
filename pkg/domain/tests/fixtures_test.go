package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

func (e *env) mustUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := e.userService.Create("Test User", username, username+"@example.com", "Tashkent", "USER")
	require.NoError(t, err)
	return user
}

func (e *env) mustAdmin(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := e.userService.Create("Test Admin", username, username+"@example.com", "Tashkent", "ADMIN")
	require.NoError(t, err)
	return user
}

func (e *env) mustCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category, err := e.categoryService.Create(name, name+" goods")
	require.NoError(t, err)
	return category
}

func (e *env) mustProduct(t *testing.T, name, price string, stock int, categoryID uuid.UUID) *model.Product {
	t.Helper()
	product, err := e.productService.Create(name, name+" description", decimal.RequireFromString(price), stock, categoryID)
	require.NoError(t, err)
	return product
}

func (e *env) mustOrderShell(t *testing.T, userID uuid.UUID) *model.Order {
	t.Helper()
	order, err := e.orders.Save(&model.Order{
		UserID:      userID,
		Status:      model.StatusPending,
		TotalAmount: decimal.Zero,
	})
	require.NoError(t, err)
	return order
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}
