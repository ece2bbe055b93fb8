package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) CreateRetailGuest(ctx context.Context, g *models.RetailGuest) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *GormRepo) ListRetailGuests(ctx context.Context) ([]models.RetailGuest, error) {
	var out []models.RetailGuest
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) DeleteRetailGuest(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.RetailGuest{}, id)
}

func (r *GormRepo) CreateWholesaleGuest(ctx context.Context, g *models.WholesaleGuest) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *GormRepo) ListWholesaleGuests(ctx context.Context) ([]models.WholesaleGuest, error) {
	var out []models.WholesaleGuest
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) DeleteWholesaleGuest(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.WholesaleGuest{}, id)
}
