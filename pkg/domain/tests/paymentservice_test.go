package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

func TestCreatePayment(t *testing.T) {
	e := newEnv()
	user := e.mustUser(t, "payer")
	order := e.mustOrderShell(t, user.ID)
	order.TotalAmount = decimal.RequireFromString("42.50")
	_, err := e.orders.Save(order)
	require.NoError(t, err)

	t.Run("Amount copies the order total", func(t *testing.T) {
		payment, err := e.paymentService.Create(user.ID, order.ID, model.MethodPayme)
		require.NoError(t, err)
		requireDecimal(t, "42.50", payment.Amount)
		assert.Equal(t, model.MethodPayme, payment.Method)
	})

	t.Run("Amount is not kept in sync afterwards", func(t *testing.T) {
		order.TotalAmount = decimal.RequireFromString("99.99")
		_, err := e.orders.Save(order)
		require.NoError(t, err)

		payments, err := e.paymentService.ListByUser(user.ID, model.Pageable{Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, payments.Content, 1)
		requireDecimal(t, "42.50", payments.Content[0].Amount)
	})

	t.Run("Unknown order", func(t *testing.T) {
		_, err := e.paymentService.Create(user.ID, uuid.New(), model.MethodCash)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := e.paymentService.Create(uuid.New(), order.ID, model.MethodCash)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestGetTrashedPayment(t *testing.T) {
	e := newEnv()
	user := e.mustUser(t, "payer")
	order := e.mustOrderShell(t, user.ID)

	payment, err := e.paymentService.Create(user.ID, order.ID, model.MethodHumo)
	require.NoError(t, err)

	require.NoError(t, e.paymentService.Delete(payment.ID))

	_, err = e.paymentService.GetOne(payment.ID)
	assert.ErrorIs(t, err, model.ErrPaymentNotFound)

	raw, err := e.payments.Find(payment.ID)
	require.NoError(t, err)
	assert.True(t, raw.Deleted)
}

func TestGetUserPayments(t *testing.T) {
	e := newEnv()
	alice := e.mustUser(t, "alice")
	bob := e.mustUser(t, "bob")
	aliceOrder := e.mustOrderShell(t, alice.ID)
	bobOrder := e.mustOrderShell(t, bob.ID)

	_, err := e.paymentService.Create(alice.ID, aliceOrder.ID, model.MethodUzcard)
	require.NoError(t, err)
	_, err = e.paymentService.Create(bob.ID, bobOrder.ID, model.MethodCash)
	require.NoError(t, err)

	page, err := e.paymentService.ListByUser(alice.ID, model.Pageable{Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, alice.ID, page.Content[0].UserID)

	_, err = e.paymentService.ListByUser(uuid.New(), model.Pageable{Page: 0, Size: 10})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
