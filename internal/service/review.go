package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

func (s *ReviewService) CreateReview(ctx context.Context, rv *models.Review) error {
	if rv.ProductID == uuid.Nil {
		return fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if rv.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client_id required", ErrValidation)
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return s.Repo.CreateReview(ctx, rv)
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.ListReviews(ctx)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	return s.Repo.ListReviewsByProduct(ctx, productID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	if rating, ok := fields["rating"].(int); ok && (rating < 1 || rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if err := s.Repo.UpdateReview(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteReview(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return err
	}
	return nil
}
