package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// OrderFilter defines filter criteria for listing orders. A nil field means
// the dimension is not filtered on. Limit caps the number of returned orders
// after sorting; zero means no cap.
type OrderFilter struct {
	UserID *string
	Status *string
	Limit  int
}

// ProductReader is the read side of the product store. The catalog query
// engine depends only on this interface.
type ProductReader interface {
	// List returns the full product collection.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// ProductRepository defines the interface for product store operations.
type ProductRepository interface {
	ProductReader

	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order store operations.
type OrderRepository interface {
	// Create inserts a new order into the store.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns orders matching the given filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)

	// UpdateStatus changes the status and/or payment status of an order.
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) (*domain.Order, error)
}

// ReviewRepository defines the interface for product review operations.
type ReviewRepository interface {
	// ListByProduct returns all reviews for a product, newest first.
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)

	// Create inserts a new review into the store.
	Create(ctx context.Context, review *domain.Review) error
}

// UserRepository defines the interface for user lookups.
type UserRepository interface {
	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves the cart for a user.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, enforcing optimistic version checks where the
	// backing store supports them.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for a user.
	Delete(ctx context.Context, userID string) error
}
