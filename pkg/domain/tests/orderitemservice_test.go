package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

func TestCreateOrderItem(t *testing.T) {
	e := newEnv()
	category := e.mustCategory(t, "Electronics")
	product := e.mustProduct(t, "Phone", "100.00", 10, category.ID)
	user := e.mustUser(t, "buyer")
	order := e.mustOrderShell(t, user.ID)

	t.Run("Fail on insufficient stock leaves stock unchanged", func(t *testing.T) {
		_, err := e.orderItemService.Create(order.ID, product.ID, 11)
		assert.ErrorIs(t, err, model.ErrInsufficientStock)

		current, err := e.products.FindActive(product.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, current.StockCount)

		items, err := e.orderItems.FindActiveByOrder(order.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Success decrements stock and snapshots price", func(t *testing.T) {
		item, err := e.orderItemService.Create(order.ID, product.ID, 3)
		require.NoError(t, err)

		requireDecimal(t, "100.00", item.UnitPrice)
		requireDecimal(t, "300.00", item.TotalPrice)
		assert.Equal(t, 3, item.Quantity)

		current, err := e.products.FindActive(product.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, current.StockCount)

		updatedOrder, err := e.orders.FindActive(order.ID)
		require.NoError(t, err)
		requireDecimal(t, "300.00", updatedOrder.TotalAmount)
	})

	t.Run("Order total sums over items", func(t *testing.T) {
		_, err := e.orderItemService.Create(order.ID, product.ID, 2)
		require.NoError(t, err)

		updatedOrder, err := e.orders.FindActive(order.ID)
		require.NoError(t, err)
		requireDecimal(t, "500.00", updatedOrder.TotalAmount)
	})

	t.Run("Fail on non-positive quantity", func(t *testing.T) {
		_, err := e.orderItemService.Create(order.ID, product.ID, 0)
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})

	t.Run("Fail on trashed order", func(t *testing.T) {
		trashedOrder := e.mustOrderShell(t, user.ID)
		require.NoError(t, e.orderService.Delete(trashedOrder.ID))

		_, err := e.orderItemService.Create(trashedOrder.ID, product.ID, 1)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestUpdateOrderItem(t *testing.T) {
	e := newEnv()
	category := e.mustCategory(t, "Electronics")
	phone := e.mustProduct(t, "Phone", "100.00", 10, category.ID)
	tablet := e.mustProduct(t, "Tablet", "250.00", 5, category.ID)
	user := e.mustUser(t, "buyer")
	order := e.mustOrderShell(t, user.ID)

	item, err := e.orderItemService.Create(order.ID, phone.ID, 2)
	require.NoError(t, err)

	t.Run("Recomputes snapshot from new product and quantity", func(t *testing.T) {
		quantity := 3
		updated, err := e.orderItemService.Update(item.ID, model.OrderItemPatch{
			ProductID: &tablet.ID,
			Quantity:  &quantity,
		})
		require.NoError(t, err)

		assert.Equal(t, tablet.ID, updated.ProductID)
		requireDecimal(t, "250.00", updated.UnitPrice)
		requireDecimal(t, "750.00", updated.TotalPrice)
	})

	t.Run("Does not touch stock", func(t *testing.T) {
		current, err := e.products.FindActive(tablet.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, current.StockCount)
	})

	t.Run("Quantity-only patch keeps product", func(t *testing.T) {
		quantity := 1
		updated, err := e.orderItemService.Update(item.ID, model.OrderItemPatch{Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, tablet.ID, updated.ProductID)
		requireDecimal(t, "250.00", updated.TotalPrice)
	})
}

func TestTrashOrderItem(t *testing.T) {
	e := newEnv()
	category := e.mustCategory(t, "Electronics")
	product := e.mustProduct(t, "Phone", "100.00", 10, category.ID)
	user := e.mustUser(t, "buyer")
	order := e.mustOrderShell(t, user.ID)

	item, err := e.orderItemService.Create(order.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, e.orderItemService.Delete(item.ID))

	_, err = e.orderItemService.GetOne(item.ID)
	assert.ErrorIs(t, err, model.ErrOrderItemNotFound)

	items, err := e.orderItems.FindActiveByOrder(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
