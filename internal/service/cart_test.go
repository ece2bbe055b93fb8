package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandoggie/backend/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(productID uuid.UUID, qty int, subtotal, size string) models.CartItem {
	return models.CartItem{
		ProductID:    productID,
		Quantity:     qty,
		UnitSubtotal: dec(subtotal),
		Size:         size,
	}
}

func TestCartService_CreateCart(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	clientID := uuid.New()

	cart, err := svc.CreateCart(ctx, clientID, []models.CartItem{
		item(uuid.New(), 2, "20.00", ""),
		item(uuid.New(), 1, "15.00", "M"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CartStatusPending, cart.Status)
	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(dec("35.00")), "total = %s", cart.Total)
}

func TestCartService_CreateCart_Validation(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name  string
		items []models.CartItem
	}{
		{name: "no items", items: nil},
		{name: "nil product", items: []models.CartItem{item(uuid.Nil, 1, "1.00", "")}},
		{name: "zero quantity", items: []models.CartItem{item(uuid.New(), 0, "1.00", "")}},
		{name: "negative subtotal", items: []models.CartItem{item(uuid.New(), 1, "-1.00", "")}},
		{name: "bad size", items: []models.CartItem{item(uuid.New(), 1, "1.00", "XXL")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCart(ctx, uuid.New(), tt.items)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCartService_CreateCart_DuplicatePending(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	clientID := uuid.New()

	_, err := svc.CreateCart(ctx, clientID, []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.NoError(t, err)

	_, err = svc.CreateCart(ctx, clientID, []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateActiveCart)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCartService_CreateCart_AllowedAfterPaid(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	clientID := uuid.New()

	cart, err := svc.CreateCart(ctx, clientID, []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.NoError(t, err)

	_, err = svc.UpdateCart(ctx, cart.ID, nil, models.CartStatusPaid)
	require.NoError(t, err)

	_, err = svc.CreateCart(ctx, clientID, []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.NoError(t, err)
}

func TestCartService_AddLineItem_MergesSameProductAndSize(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	productID := uuid.New()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(productID, 2, "20.00", "M")})
	require.NoError(t, err)

	cart, err = svc.AddLineItem(ctx, cart.ID, item(productID, 1, "10.00", "M"))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitSubtotal.Equal(dec("30.00")))
	assert.True(t, cart.Total.Equal(dec("30.00")))
}

func TestCartService_AddLineItem_DifferentSizeAppends(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	productID := uuid.New()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(productID, 1, "10.00", "M")})
	require.NoError(t, err)

	cart, err = svc.AddLineItem(ctx, cart.ID, item(productID, 1, "10.00", "L"))
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(dec("20.00")))
}

func TestCartService_AddLineItem_CartNotFound(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}

	_, err := svc.AddLineItem(context.Background(), uuid.New(), item(uuid.New(), 1, "1.00", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_RemoveLineItem(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()
	productA := uuid.New()
	productB := uuid.New()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{
		item(productA, 2, "20.00", ""),
		item(productB, 1, "15.00", "M"),
	})
	require.NoError(t, err)
	require.True(t, cart.Total.Equal(dec("35.00")))

	cart, err = svc.RemoveLineItem(ctx, cart.ID, productA)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, productB, cart.Items[0].ProductID)
	assert.True(t, cart.Total.Equal(dec("15.00")), "total = %s", cart.Total)
}

func TestCartService_RemoveLineItem_NotFound(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.NoError(t, err)

	_, err = svc.RemoveLineItem(ctx, cart.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func TestCartService_UpdateCart(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(uuid.New(), 1, "5.00", "")})
	require.NoError(t, err)

	t.Run("no update data", func(t *testing.T) {
		_, err := svc.UpdateCart(ctx, cart.ID, nil, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoUpdateData)
	})

	t.Run("replace items recomputes total", func(t *testing.T) {
		updated, err := svc.UpdateCart(ctx, cart.ID, []models.CartItem{
			item(uuid.New(), 3, "30.00", "S"),
			item(uuid.New(), 1, "12.50", ""),
		}, "")
		require.NoError(t, err)
		assert.Len(t, updated.Items, 2)
		assert.True(t, updated.Total.Equal(dec("42.50")))
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateCart(ctx, cart.ID, nil, "shipped")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("status to paid", func(t *testing.T) {
		updated, err := svc.UpdateCart(ctx, cart.ID, nil, models.CartStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, models.CartStatusPaid, updated.Status)
	})
}

func TestCartService_Clear(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(uuid.New(), 2, "40.00", "")})
	require.NoError(t, err)

	cleared, err := svc.Clear(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.True(t, cleared.Total.IsZero())
	assert.Equal(t, models.CartStatusPending, cleared.Status)

	// the cart row survives a clear
	got, err := svc.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartService_Stats(t *testing.T) {
	svc := &CartService{Repo: newTestRepo(t)}
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Carts)
		assert.Zero(t, stats.LineItems)
		assert.True(t, stats.TotalValue.IsZero())
	})

	cartA, err := svc.CreateCart(ctx, uuid.New(), []models.CartItem{
		item(uuid.New(), 1, "10.00", ""),
		item(uuid.New(), 1, "5.00", "S"),
	})
	require.NoError(t, err)
	_, err = svc.CreateCart(ctx, uuid.New(), []models.CartItem{item(uuid.New(), 1, "7.00", "")})
	require.NoError(t, err)

	_, err = svc.UpdateCart(ctx, cartA.ID, nil, models.CartStatusPaid)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Carts)
	assert.EqualValues(t, 3, stats.LineItems)
	assert.EqualValues(t, 1, stats.Pending)
	assert.EqualValues(t, 1, stats.Paid)
	assert.True(t, stats.TotalValue.Equal(dec("22.00")), "total = %s", stats.TotalValue)
}
