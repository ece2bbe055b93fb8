package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) CartExists(ctx context.Context, cartID uuid.UUID) (bool, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Select("id").First(&cart, "id = ?", cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) UpdateOrder(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Order, error) {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetOrder(ctx, id)
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListOrdersByPayment(ctx context.Context, method string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("payment_method = ?", method).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListOrdersByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

type OrderStats struct {
	Orders   int64 `json:"orders"`
	Transfer int64 `json:"transferencia"`
	Cash     int64 `json:"efectivo"`
}

func (r *GormRepo) OrderStats(ctx context.Context) (*OrderStats, error) {
	stats := &OrderStats{}
	db := r.DB.WithContext(ctx)

	if err := db.Model(&models.Order{}).Count(&stats.Orders).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		PaymentMethod string
		N             int64
	}
	err := db.Model(&models.Order{}).
		Select("payment_method, count(*) as n").
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		switch row.PaymentMethod {
		case models.PaymentTransfer:
			stats.Transfer = row.N
		case models.PaymentCash:
			stats.Cash = row.N
		}
	}
	return stats, nil
}
