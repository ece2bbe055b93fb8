package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandoggie/backend/internal/hash"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/tokens"
)

const testPassword = "hunter2hunter2"

func seedClient(t *testing.T, r *repo.GormRepo, email string) *models.Client {
	t.Helper()
	pwHash, err := hash.HashPassword(testPassword)
	require.NoError(t, err)
	c := &models.Client{Name: "Alex", Email: email, PasswordHash: pwHash}
	require.NoError(t, r.DB.Create(c).Error)
	return c
}

func seedVet(t *testing.T, r *repo.GormRepo, email string) *models.Vet {
	t.Helper()
	pwHash, err := hash.HashPassword(testPassword)
	require.NoError(t, err)
	v := &models.Vet{Name: "Patitas Clinic", Email: email, PasswordHash: pwHash}
	require.NoError(t, r.DB.Create(v).Error)
	return v
}

func seedEmployee(t *testing.T, r *repo.GormRepo, email string) *models.Employee {
	t.Helper()
	pwHash, err := hash.HashPassword(testPassword)
	require.NoError(t, err)
	e := &models.Employee{Name: "Sam", Email: email, PasswordHash: pwHash, Role: "admin"}
	require.NoError(t, r.DB.Create(e).Error)
	return e
}

func TestAuthService_Login_Prechecks(t *testing.T) {
	// The repo is deliberately nil: pre-checks must fail before any store
	// lookup happens.
	svc := &AuthService{Repo: nil, SessionSecret: []byte("test-secret")}
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "empty email", email: "", password: "longenough", want: ErrInvalidEmail},
		{name: "malformed email", email: "not-an-email", password: "longenough", want: ErrInvalidEmail},
		{name: "short password", email: "user@x.com", password: "short", want: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, SessionSecret: []byte("test-secret")}
	client := seedClient(t, r, "alex@pets.com")

	res, err := svc.Login(context.Background(), "alex@pets.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, client.ID, res.Principal.ID)
	assert.Equal(t, models.KindClient, res.Principal.Kind)
	require.NotEmpty(t, res.Token)

	claims, err := tokens.SessionFromToken(res.Token, svc.SessionSecret)
	require.NoError(t, err)
	assert.Equal(t, client.ID.String(), claims.Subject)
	assert.Equal(t, models.KindClient, claims.Kind)
}

func TestAuthService_Login_PriorityOrder(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, SessionSecret: []byte("test-secret")}

	// the same email in all three stores resolves to the client
	client := seedClient(t, r, "shared@pets.com")
	seedVet(t, r, "shared@pets.com")
	seedEmployee(t, r, "shared@pets.com")

	res, err := svc.Login(context.Background(), "shared@pets.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, models.KindClient, res.Principal.Kind)
	assert.Equal(t, client.ID, res.Principal.ID)
}

func TestAuthService_Login_VetBeforeEmployee(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, SessionSecret: []byte("test-secret")}

	vet := seedVet(t, r, "clinic@pets.com")
	seedEmployee(t, r, "clinic@pets.com")

	res, err := svc.Login(context.Background(), "clinic@pets.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, models.KindVet, res.Principal.Kind)
	assert.Equal(t, vet.ID, res.Principal.ID)
}

func TestAuthService_Login_PrincipalNotFound(t *testing.T) {
	svc := &AuthService{Repo: newTestRepo(t), SessionSecret: []byte("test-secret")}

	_, err := svc.Login(context.Background(), "ghost@pets.com", "longenough")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, SessionSecret: []byte("test-secret")}
	seedClient(t, r, "alex@pets.com")

	_, err := svc.Login(context.Background(), "alex@pets.com", "wrongpassword")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCredentials)
}
