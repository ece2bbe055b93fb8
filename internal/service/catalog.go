package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/search"
)

// CatalogService is products, categories and holidays. Product writes are
// mirrored into the search index best-effort: a failed index write is logged,
// not surfaced, since the database row is the source of truth.
type CatalogService struct {
	Repo   *repo.GormRepo
	Search search.Indexer
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return err
	}
	s.indexProduct(ctx, p)
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return s.Repo.ListProductsByCategory(ctx, categoryID)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Product, error) {
	if len(fields) == 0 {
		return nil, ErrNoUpdateData
	}
	if err := s.Repo.UpdateProduct(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return err
	}
	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id.String()); err != nil {
			logging.FromContext(ctx).Warn("search deindex failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("%w: query required", ErrValidation)
	}
	if s.Search == nil {
		return 0, nil, fmt.Errorf("%w: search backend unavailable", ErrInternal)
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	if from < 0 {
		from = 0
	}
	return s.Search.Search(ctx, query, from, size)
}

func (s *CatalogService) CreateCategory(ctx context.Context, c *models.Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	return s.Repo.CreateCategory(ctx, c)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	if err := s.Repo.UpdateCategory(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CatalogService) CreateHoliday(ctx context.Context, h *models.Holiday) error {
	if h.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if h.Date.IsZero() {
		return fmt.Errorf("%w: date required", ErrValidation)
	}
	h.Date = h.Date.UTC().Truncate(24 * time.Hour)
	return s.Repo.CreateHoliday(ctx, h)
}

func (s *CatalogService) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	return s.Repo.ListHolidays(ctx)
}

func (s *CatalogService) UpdateHoliday(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	if err := s.Repo.UpdateHoliday(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: holiday", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CatalogService) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteHoliday(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: holiday", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CatalogService) indexProduct(ctx context.Context, p *models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search index failed", "product_id", p.ID, "error", err)
	}
}
