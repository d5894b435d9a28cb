package memory

import (
	"context"
	"sync"

	apperrors "github.com/utafrali/storefront/pkg/errors"

	"github.com/utafrali/storefront/internal/domain"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository creates a user store preloaded with the given users.
func NewUserRepository(seed []domain.User) *UserRepository {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

// GetByID retrieves a user by its unique identifier.
func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user", id)
}

// Count returns the total number of users.
func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
