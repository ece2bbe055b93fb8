package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/hash"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/tokens"
)

const (
	SessionTTL  = 24 * time.Hour
	MinPassword = 8
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Principal is the public projection of any authenticable account.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Kind  string    `json:"kind"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}

// AuthService resolves credentials against the three principal stores and
// issues the session token.
type AuthService struct {
	Repo          *repo.GormRepo
	SessionSecret []byte
}

// lookup is one named strategy in the login priority chain.
type lookup struct {
	kind string
	find func(ctx context.Context, email string) (Principal, string, error)
}

// Lookup order is fixed: a client wins over a vet, a vet over an employee,
// when the same email exists in more than one store.
func (s *AuthService) lookups() []lookup {
	return []lookup{
		{models.KindClient, func(ctx context.Context, email string) (Principal, string, error) {
			c, err := s.Repo.FindClientByEmail(ctx, email)
			if err != nil {
				return Principal{}, "", err
			}
			return Principal{ID: c.ID, Email: c.Email, Name: c.Name, Kind: models.KindClient}, c.PasswordHash, nil
		}},
		{models.KindVet, func(ctx context.Context, email string) (Principal, string, error) {
			v, err := s.Repo.FindVetByEmail(ctx, email)
			if err != nil {
				return Principal{}, "", err
			}
			return Principal{ID: v.ID, Email: v.Email, Name: v.Name, Kind: models.KindVet}, v.PasswordHash, nil
		}},
		{models.KindEmployee, func(ctx context.Context, email string) (Principal, string, error) {
			e, err := s.Repo.FindEmployeeByEmail(ctx, email)
			if err != nil {
				return Principal{}, "", err
			}
			return Principal{ID: e.ID, Email: e.Email, Name: e.Name, Kind: models.KindEmployee}, e.PasswordHash, nil
		}},
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !emailRx.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPassword {
		return nil, ErrWeakPassword
	}

	principal, passwordHash, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if !hash.CheckPassword(passwordHash, password) {
		return nil, ErrBadCredentials
	}

	exp := time.Now().Add(SessionTTL)
	token, err := tokens.SignSession(principal.ID.String(), principal.Kind, s.SessionSecret, exp)
	if err != nil {
		return nil, ErrTokenIssuanceFailed
	}

	return &LoginResult{Token: token, ExpiresAt: exp, Principal: principal}, nil
}

// resolve walks the strategy chain, short-circuiting on the first store that
// holds the email.
func (s *AuthService) resolve(ctx context.Context, email string) (Principal, string, error) {
	for _, l := range s.lookups() {
		principal, passwordHash, err := l.find(ctx, email)
		if err == nil {
			return principal, passwordHash, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Principal{}, "", err
		}
	}
	return Principal{}, "", ErrPrincipalNotFound
}
