package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
)

// CartService owns the single mutable cart per client. Every mutation
// revalidates the line items and leaves the total equal to the sum of the
// items' subtotals; the repo recomputes it inside the same transaction.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) CreateCart(ctx context.Context, clientID uuid.UUID, items []models.CartItem) (*models.Cart, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("%w: client_id required", ErrValidation)
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	if _, err := s.Repo.PendingCartByClient(ctx, clientID); err == nil {
		return nil, ErrDuplicateActiveCart
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart := &models.Cart{
		ClientID: clientID,
		Items:    items,
		Total:    sumSubtotals(items),
		Status:   models.CartStatusPending,
	}
	if err := s.Repo.CreateCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ListCarts(ctx context.Context) ([]models.Cart, error) {
	return s.Repo.ListCarts(ctx)
}

func (s *CartService) AddLineItem(ctx context.Context, cartID uuid.UUID, item models.CartItem) (*models.Cart, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	cart, err := s.Repo.AddItem(ctx, cartID, item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveLineItem(ctx context.Context, cartID, productID uuid.UUID) (*models.Cart, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	cart, err := s.Repo.RemoveItem(ctx, cartID, productID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrLineItemNotFound):
			return nil, ErrLineItemNotFound
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// UpdateCart replaces the line items and/or the status. At least one of the
// two must be supplied.
func (s *CartService) UpdateCart(ctx context.Context, cartID uuid.UUID, items []models.CartItem, status string) (*models.Cart, error) {
	if items == nil && status == "" {
		return nil, ErrNoUpdateData
	}
	if status != "" && status != models.CartStatusPending && status != models.CartStatusPaid {
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrValidation, models.CartStatusPending, models.CartStatusPaid)
	}

	var cart *models.Cart
	var err error
	if items != nil {
		if err := validateItems(items); err != nil {
			return nil, err
		}
		if cart, err = s.Repo.ReplaceItems(ctx, cartID, items); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCartNotFound
			}
			return nil, err
		}
	}
	if status != "" {
		if cart, err = s.Repo.UpdateCartStatus(ctx, cartID, status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCartNotFound
			}
			return nil, err
		}
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.ClearCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	if err := s.Repo.DeleteCart(ctx, cartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return nil
}

func (s *CartService) Stats(ctx context.Context) (*repo.CartStats, error) {
	return s.Repo.CartStats(ctx)
}

func validateItems(items []models.CartItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item required", ErrValidation)
	}
	for i := range items {
		if err := validateItem(items[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item models.CartItem) error {
	if item.ProductID == uuid.Nil {
		return fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if item.UnitSubtotal.IsNegative() {
		return fmt.Errorf("%w: subtotal must not be negative", ErrValidation)
	}
	if item.Size != "" && !models.ValidSize(item.Size) {
		return fmt.Errorf("%w: size must be one of %v", ErrValidation, models.Sizes)
	}
	return nil
}

func sumSubtotals(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].UnitSubtotal)
	}
	return total
}
