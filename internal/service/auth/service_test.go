package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository/memory"
	pkgauth "github.com/jwalitptl/clinic-booking-api/pkg/auth"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

func newTestService() *Service {
	seed := memory.NewSeedData()
	users := memory.NewUserRepository(seed.Users)
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return NewService(users, jwtSvc, time.Hour)
}

func TestLoginWithSeedCredentials(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "patient@example.com",
		Password: memory.SeedPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	require.NotNil(t, resp.User)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, model.RolePatient, resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "patient@example.com",
		Password: "not-the-password",
	})
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: memory.SeedPassword,
	})
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
}

func TestSignupSignsIn(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &model.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
		Role:     model.RolePatient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// The fresh token authenticates immediately.
	user, claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
	assert.Equal(t, "jane@example.com", claims.Email)

	// And the account can log in again with the chosen password.
	_, err = svc.Login(ctx, &model.LoginRequest{Email: "jane@example.com", Password: "hunter2hunter2"})
	assert.NoError(t, err)
}

func TestSignupDoctorGetsDefaultSpecialty(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Signup(context.Background(), &model.SignupRequest{
		Name:     "Dr. New",
		Email:    "drnew@example.com",
		Password: "hunter2hunter2",
		Role:     model.RoleDoctor,
	})
	require.NoError(t, err)
	assert.Equal(t, "specialty-1", resp.User.SpecialtyID)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService()

	_, err := svc.Signup(context.Background(), &model.SignupRequest{
		Name:     "Imposter",
		Email:    "patient@example.com",
		Password: "hunter2hunter2",
		Role:     model.RolePatient,
	})
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "doctor@example.com",
		Password: memory.SeedPassword,
	})
	require.NoError(t, err)

	_, claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)

	svc.Logout(ctx, claims.SessionID)

	// The token itself is still valid JWT, but its session is gone.
	_, _, err = svc.Authenticate(ctx, resp.Token)
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))

	// Logging out twice is fine.
	svc.Logout(ctx, claims.SessionID)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Authenticate(context.Background(), "not.a.jwt")
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
}
