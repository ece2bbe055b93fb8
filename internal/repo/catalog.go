package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	return out, r.DB.WithContext(ctx).Where("category_id = ?", categoryID).Find(&out).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Product{}, id, fields)
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Product{}, id)
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Category{}, id, fields)
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Category{}, id)
}

func (r *GormRepo) CreateHoliday(ctx context.Context, h *models.Holiday) error {
	return r.DB.WithContext(ctx).Create(h).Error
}

func (r *GormRepo) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	var out []models.Holiday
	return out, r.DB.WithContext(ctx).Order("date ASC").Find(&out).Error
}

func (r *GormRepo) UpdateHoliday(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Holiday{}, id, fields)
}

func (r *GormRepo) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Holiday{}, id)
}
