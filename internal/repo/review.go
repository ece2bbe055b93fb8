package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	return r.DB.WithContext(ctx).Create(rv).Error
}

func (r *GormRepo) ListReviews(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	return out, r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
}

func (r *GormRepo) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var out []models.Review
	return out, r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
}

func (r *GormRepo) UpdateReview(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Review{}, id, fields)
}

func (r *GormRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Review{}, id)
}
