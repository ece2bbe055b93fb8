package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandoggie/backend/internal/models"
)

func newOrderEnv(t *testing.T) (*OrderService, *CartService, uuid.UUID) {
	t.Helper()
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}

	cart, err := carts.CreateCart(context.Background(), uuid.New(), []models.CartItem{
		item(uuid.New(), 1, "25.00", ""),
	})
	require.NoError(t, err)
	return orders, carts, cart.ID
}

func TestOrderService_CreateOrder_NormalizesInput(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)

	order, err := svc.CreateOrder(context.Background(), cartID, "  123 Main St  ", "EFECTIVO")
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", order.DeliveryAddress)
	assert.Equal(t, models.PaymentCash, order.PaymentMethod)
	assert.Equal(t, cartID, order.CartID)
}

func TestOrderService_CreateOrder_ValidationOrder(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		cartID  uuid.UUID
		address string
		method  string
		want    error
	}{
		{name: "missing cart", cartID: uuid.Nil, address: "", method: "", want: ErrMissingCart},
		{name: "missing address", cartID: cartID, address: "   ", method: "", want: ErrMissingAddress},
		{name: "missing method", cartID: cartID, address: "somewhere", method: "", want: ErrMissingPaymentMethod},
		{name: "invalid method", cartID: cartID, address: "somewhere", method: "paypal", want: ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tt.cartID, tt.address, tt.method)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOrderService_CreateOrder_MixedCasePayment(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)

	order, err := svc.CreateOrder(context.Background(), cartID, "addr", "Transferencia")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentTransfer, order.PaymentMethod)
}

func TestOrderService_CreateOrder_CartDoesNotExist(t *testing.T) {
	svc, _, _ := newOrderEnv(t)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), "addr", "efectivo")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCartDoesNotExist)
}

func TestOrderService_CreateOrder_DoesNotTouchCartStatus(t *testing.T) {
	svc, carts, cartID := newOrderEnv(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, cartID, "addr", "efectivo")
	require.NoError(t, err)

	cart, err := carts.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, models.CartStatusPending, cart.Status)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, cartID, "old address", "efectivo")
	require.NoError(t, err)

	t.Run("no fields", func(t *testing.T) {
		_, err := svc.UpdateOrder(ctx, order.ID, nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoUpdateData)
	})

	t.Run("unknown order", func(t *testing.T) {
		addr := "somewhere"
		_, err := svc.UpdateOrder(ctx, uuid.New(), nil, &addr, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("fields revalidated", func(t *testing.T) {
		bad := "card"
		_, err := svc.UpdateOrder(ctx, order.ID, nil, nil, &bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("updates and normalizes", func(t *testing.T) {
		addr := "  new address "
		method := "TRANSFERENCIA"
		updated, err := svc.UpdateOrder(ctx, order.ID, nil, &addr, &method)
		require.NoError(t, err)
		assert.Equal(t, "new address", updated.DeliveryAddress)
		assert.Equal(t, models.PaymentTransfer, updated.PaymentMethod)
	})
}

func TestOrderService_ListByPayment(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, cartID, "addr", "efectivo")
	require.NoError(t, err)

	orders, err := svc.ListByPayment(ctx, "Efectivo")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.ListByPayment(ctx, "transferencia")
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = svc.ListByPayment(ctx, "bitcoin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestOrderService_ListByDateRange(t *testing.T) {
	svc, _, cartID := newOrderEnv(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, cartID, "addr", "efectivo")
	require.NoError(t, err)

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.ListByDateRange(ctx, "not-a-date", "2024-01-01")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := svc.ListByDateRange(ctx, "2024-06-01", "2024-01-01")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("future bound", func(t *testing.T) {
		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		_, err := svc.ListByDateRange(ctx, "2024-01-01", future)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFutureDateRejected)
	})

	t.Run("matching range", func(t *testing.T) {
		start := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		end := time.Now().UTC().Format(time.RFC3339Nano)
		orders, err := svc.ListByDateRange(ctx, start, end)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestOrderService_Stats(t *testing.T) {
	svc, carts, cartID := newOrderEnv(t)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Orders)
		assert.Zero(t, stats.Transfer)
		assert.Zero(t, stats.Cash)
	})

	secondCart, err := carts.CreateCart(ctx, uuid.New(), []models.CartItem{item(uuid.New(), 1, "9.99", "")})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, cartID, "addr", "efectivo")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, secondCart.ID, "addr", "transferencia")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Orders)
	assert.EqualValues(t, 1, stats.Transfer)
	assert.EqualValues(t, 1, stats.Cash)
}
