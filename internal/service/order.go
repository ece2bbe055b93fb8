package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
)

// OrderService turns a finalized cart plus delivery/payment metadata into an
// order record. It does not touch the source cart's status; marking a cart
// paid is an explicit UpdateCart step.
type OrderService struct {
	Repo *repo.GormRepo
}

const dateOnly = "2006-01-02"

func (s *OrderService) CreateOrder(ctx context.Context, cartID uuid.UUID, deliveryAddress, paymentMethod string) (*models.Order, error) {
	if cartID == uuid.Nil {
		return nil, ErrMissingCart
	}
	address := strings.TrimSpace(deliveryAddress)
	if address == "" {
		return nil, ErrMissingAddress
	}
	if paymentMethod == "" {
		return nil, ErrMissingPaymentMethod
	}
	method, err := normalizePayment(paymentMethod)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.CartExists(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCartDoesNotExist
	}

	order := &models.Order{
		CartID:          cartID,
		DeliveryAddress: address,
		PaymentMethod:   method,
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// UpdateOrder revalidates each supplied field with the creation rules.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, cartID *uuid.UUID, deliveryAddress, paymentMethod *string) (*models.Order, error) {
	fields := map[string]any{}

	if cartID != nil {
		if *cartID == uuid.Nil {
			return nil, ErrMissingCart
		}
		exists, err := s.Repo.CartExists(ctx, *cartID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCartDoesNotExist
		}
		fields["cart_id"] = *cartID
	}
	if deliveryAddress != nil {
		address := strings.TrimSpace(*deliveryAddress)
		if address == "" {
			return nil, ErrMissingAddress
		}
		fields["delivery_address"] = address
	}
	if paymentMethod != nil {
		if *paymentMethod == "" {
			return nil, ErrMissingPaymentMethod
		}
		method, err := normalizePayment(*paymentMethod)
		if err != nil {
			return nil, err
		}
		fields["payment_method"] = method
	}
	if len(fields) == 0 {
		return nil, ErrNoUpdateData
	}

	order, err := s.Repo.UpdateOrder(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) ListByPayment(ctx context.Context, method string) ([]models.Order, error) {
	normalized, err := normalizePayment(method)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListOrdersByPayment(ctx, normalized)
}

func (s *OrderService) ListByDateRange(ctx context.Context, start, end string) ([]models.Order, error) {
	from, err := parseDate(start)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	now := time.Now().UTC()
	if from.After(now) || to.After(now) {
		return nil, ErrFutureDateRejected
	}
	return s.Repo.ListOrdersByDateRange(ctx, from, to)
}

func (s *OrderService) Stats(ctx context.Context) (*repo.OrderStats, error) {
	return s.Repo.OrderStats(ctx)
}

func normalizePayment(method string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(method))
	if m != models.PaymentTransfer && m != models.PaymentCash {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
