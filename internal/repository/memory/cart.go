package memory

import (
	"context"
	"sync"

	apperrors "github.com/utafrali/storefront/pkg/errors"

	"github.com/utafrali/storefront/internal/domain"
)

// CartRepository is an in-memory implementation of repository.CartRepository.
// It enforces the same optimistic version check as the Redis-backed store so
// callers behave identically against either.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]domain.Cart)}
}

// Get retrieves the cart for a user.
func (r *CartRepository) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, apperrors.NotFound("cart", userID)
	}
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return &cart, nil
}

// Save persists a cart. The incoming Version must match the stored one; the
// stored version is then incremented.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.carts[cart.UserID]; ok && current.Version != cart.Version {
		return apperrors.Conflict("cart was modified concurrently, retry the operation")
	}

	stored := *cart
	stored.Version = cart.Version + 1
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)
	stored.Items = items

	r.carts[cart.UserID] = stored
	return nil
}

// Delete removes the cart for a user.
func (r *CartRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
