package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

func TestCreateRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(NewSeedData().Users)

	err := repo.Create(context.Background(), &model.User{
		ID:    "user-10",
		Email: "PATIENT@example.com",
		Role:  model.RolePatient,
	})
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestGetByEmailIgnoresCase(t *testing.T) {
	repo := NewUserRepository(NewSeedData().Users)

	u, err := repo.GetByEmail(context.Background(), "Doctor@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-2", u.ID)
}

func TestGetUnknownUser(t *testing.T) {
	repo := NewUserRepository(nil)

	_, err := repo.Get(context.Background(), "user-404")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
