package auth

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository"
	"github.com/jwalitptl/clinic-booking-api/pkg/auth"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

const bcryptCost = 12

// defaultDoctorSpecialty is assigned to doctor signups, matching the
// demo dataset's default.
const defaultDoctorSpecialty = "specialty-1"

// Service is the session store: it authenticates users and tracks live
// sessions. Logout removes the session; the user record stays in the
// directory.
type Service struct {
	users    repository.UserRepository
	jwtSvc   auth.JWTService
	sessions *gocache.Cache
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, sessionTTL time.Duration) *Service {
	return &Service{
		users:    users,
		jwtSvc:   jwtSvc,
		sessions: gocache.New(sessionTTL, 10*time.Minute),
	}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	return s.openSession(user)
}

// Signup creates the account and signs it in immediately.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, errors.Service("failed to hash password", err)
	}

	user := &model.User{
		ID:           model.NewID("user"),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if user.Role == model.RoleDoctor {
		user.SpecialtyID = defaultDoctorSpecialty
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(user)
}

// Logout drops the session. Idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// Authenticate resolves a bearer token to its user, rejecting tokens
// whose session was logged out or expired.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, *model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, nil, errors.Unauthorized("invalid token")
	}

	if _, ok := s.sessions.Get(claims.SessionID); !ok {
		return nil, nil, errors.Unauthorized("session expired")
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, nil, errors.Unauthorized("unknown user")
	}
	return user, claims, nil
}

func (s *Service) openSession(user *model.User) (*model.TokenResponse, error) {
	token, sessionID, expiresAt, err := s.jwtSvc.GenerateToken(user)
	if err != nil {
		return nil, errors.Service("failed to generate token", err)
	}
	s.sessions.Set(sessionID, user.ID, time.Until(expiresAt))

	return &model.TokenResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
