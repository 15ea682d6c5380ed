package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// UserRepository is a mutex-guarded in-memory identity directory.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserRepository(seed []*model.User) *UserRepository {
	users := make(map[string]*model.User, len(seed))
	for _, u := range seed {
		cp := *u
		users[u.ID] = &cp
	}
	return &UserRepository{users: users}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errors.Conflict("email already in use")
		}
	}

	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("user")
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("user")
}
