package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandoggie/backend/internal/hash"
	"github.com/bandoggie/backend/internal/models"
)

func TestPrincipalService_RegisterClient(t *testing.T) {
	r := newTestRepo(t)
	svc := &PrincipalService{Repo: r}
	ctx := context.Background()

	c := &models.Client{Name: "Alex", Email: "alex@pets.com"}
	require.NoError(t, svc.RegisterClient(ctx, c, "hunter2hunter2"))
	require.NotEqual(t, uuid.Nil, c.ID)

	stored, err := r.FindClientByEmail(ctx, "alex@pets.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.True(t, hash.CheckPassword(stored.PasswordHash, "hunter2hunter2"))
	assert.False(t, stored.Verified)
}

func TestPrincipalService_RegisterClient_Validation(t *testing.T) {
	svc := &PrincipalService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name     string
		client   models.Client
		password string
		want     error
	}{
		{name: "bad email", client: models.Client{Name: "Alex", Email: "nope"}, password: "hunter2hunter2", want: ErrInvalidEmail},
		{name: "weak password", client: models.Client{Name: "Alex", Email: "a@x.com"}, password: "short", want: ErrWeakPassword},
		{name: "missing name", client: models.Client{Email: "a@x.com"}, password: "hunter2hunter2", want: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RegisterClient(ctx, &tt.client, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPrincipalService_RegisterClient_DuplicateEmail(t *testing.T) {
	svc := &PrincipalService{Repo: newTestRepo(t)}
	ctx := context.Background()

	first := &models.Client{Name: "Alex", Email: "alex@pets.com"}
	require.NoError(t, svc.RegisterClient(ctx, first, "hunter2hunter2"))

	second := &models.Client{Name: "Other", Email: "alex@pets.com"}
	err := svc.RegisterClient(ctx, second, "hunter2hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestPrincipalService_RegisterVetAndEmployee(t *testing.T) {
	r := newTestRepo(t)
	svc := &PrincipalService{Repo: r}
	ctx := context.Background()

	v := &models.Vet{Name: "Patitas Clinic", Email: "clinic@pets.com", NIT: "0614-1234"}
	require.NoError(t, svc.RegisterVet(ctx, v, "hunter2hunter2"))

	e := &models.Employee{Name: "Sam", Email: "sam@bandoggie.com", Role: "admin"}
	require.NoError(t, svc.RegisterEmployee(ctx, e, "hunter2hunter2"))

	vets, err := svc.ListVets(ctx)
	require.NoError(t, err)
	require.Len(t, vets, 1)
	assert.Equal(t, "0614-1234", vets[0].NIT)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "admin", employees[0].Role)
}

func TestPrincipalService_UpdateAndDelete(t *testing.T) {
	r := newTestRepo(t)
	svc := &PrincipalService{Repo: r}
	ctx := context.Background()

	c := &models.Client{Name: "Alex", Email: "alex@pets.com"}
	require.NoError(t, svc.RegisterClient(ctx, c, "hunter2hunter2"))

	require.NoError(t, svc.UpdateClient(ctx, c.ID, map[string]any{"phone": "7777-0000"}))
	stored, err := r.FindClientByEmail(ctx, "alex@pets.com")
	require.NoError(t, err)
	assert.Equal(t, "7777-0000", stored.Phone)

	require.NoError(t, svc.DeleteClient(ctx, c.ID))
	_, err = r.FindClientByEmail(ctx, "alex@pets.com")
	require.Error(t, err)

	err = svc.DeleteClient(ctx, c.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}
