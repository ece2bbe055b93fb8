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

// GuestService is contact capture for purchases made without an account.
type GuestService struct {
	Repo *repo.GormRepo
}

func (s *GuestService) CreateRetailGuest(ctx context.Context, g *models.RetailGuest) error {
	if g.Name == "" || !emailRx.MatchString(g.Email) {
		return fmt.Errorf("%w: name and valid email required", ErrValidation)
	}
	return s.Repo.CreateRetailGuest(ctx, g)
}

func (s *GuestService) ListRetailGuests(ctx context.Context) ([]models.RetailGuest, error) {
	return s.Repo.ListRetailGuests(ctx)
}

func (s *GuestService) DeleteRetailGuest(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteRetailGuest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: guest record", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *GuestService) CreateWholesaleGuest(ctx context.Context, g *models.WholesaleGuest) error {
	if g.Name == "" || !emailRx.MatchString(g.Email) {
		return fmt.Errorf("%w: name and valid email required", ErrValidation)
	}
	return s.Repo.CreateWholesaleGuest(ctx, g)
}

func (s *GuestService) ListWholesaleGuests(ctx context.Context) ([]models.WholesaleGuest, error) {
	return s.Repo.ListWholesaleGuests(ctx)
}

func (s *GuestService) DeleteWholesaleGuest(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteWholesaleGuest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: guest record", ErrNotFound)
		}
		return err
	}
	return nil
}
