package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/hash"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
)

// PrincipalService covers registration and CRUD for the three account kinds.
type PrincipalService struct {
	Repo *repo.GormRepo
}

func (s *PrincipalService) RegisterClient(ctx context.Context, c *models.Client, password string) error {
	if err := checkCredentials(c.Email, password); err != nil {
		return err
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: hash password", ErrInternal)
	}
	c.PasswordHash = pwHash
	if err := s.Repo.CreateClient(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PrincipalService) RegisterVet(ctx context.Context, v *models.Vet, password string) error {
	if err := checkCredentials(v.Email, password); err != nil {
		return err
	}
	if v.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: hash password", ErrInternal)
	}
	v.PasswordHash = pwHash
	if err := s.Repo.CreateVet(ctx, v); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PrincipalService) RegisterEmployee(ctx context.Context, e *models.Employee, password string) error {
	if err := checkCredentials(e.Email, password); err != nil {
		return err
	}
	if e.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: hash password", ErrInternal)
	}
	e.PasswordHash = pwHash
	if err := s.Repo.CreateEmployee(ctx, e); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PrincipalService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.Repo.ListClients(ctx)
}

func (s *PrincipalService) ListVets(ctx context.Context) ([]models.Vet, error) {
	return s.Repo.ListVets(ctx)
}

func (s *PrincipalService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.Repo.ListEmployees(ctx)
}

func (s *PrincipalService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	c, err := s.Repo.GetClient(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return c, nil
}

func (s *PrincipalService) GetVet(ctx context.Context, id uuid.UUID) (*models.Vet, error) {
	v, err := s.Repo.GetVet(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return v, nil
}

func (s *PrincipalService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	e, err := s.Repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return e, nil
}

func (s *PrincipalService) UpdateClient(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	return s.mapNotFound(s.Repo.UpdateClient(ctx, id, fields))
}

func (s *PrincipalService) UpdateVet(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	return s.mapNotFound(s.Repo.UpdateVet(ctx, id, fields))
}

func (s *PrincipalService) UpdateEmployee(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoUpdateData
	}
	return s.mapNotFound(s.Repo.UpdateEmployee(ctx, id, fields))
}

func (s *PrincipalService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return s.mapNotFound(s.Repo.DeleteClient(ctx, id))
}

func (s *PrincipalService) DeleteVet(ctx context.Context, id uuid.UUID) error {
	return s.mapNotFound(s.Repo.DeleteVet(ctx, id))
}

func (s *PrincipalService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return s.mapNotFound(s.Repo.DeleteEmployee(ctx, id))
}

func (s *PrincipalService) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPrincipalNotFound
	}
	return err
}

func checkCredentials(email, password string) error {
	if !emailRx.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < MinPassword {
		return ErrWeakPassword
	}
	return nil
}
