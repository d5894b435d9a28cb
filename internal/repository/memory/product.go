// Package memory provides mutex-guarded in-memory stores seeded with fixture
// data. They stand in for a database: every read hands out copies so callers
// can never mutate the canonical collections.
package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/utafrali/storefront/pkg/errors"

	"github.com/utafrali/storefront/internal/domain"
)

// ProductRepository is an in-memory implementation of
// repository.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewProductRepository creates a product store preloaded with the given
// products.
func NewProductRepository(seed []domain.Product) *ProductRepository {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &ProductRepository{products: products}
}

// List returns a copy of the full product collection.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its unique identifier.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("product", id)
}

// Create inserts a new product into the store.
func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			return apperrors.AlreadyExists("product", "id", product.ID)
		}
	}
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product in the store.
func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return apperrors.NotFound("product", product.ID)
}

// Delete removes a product from the store by its identifier.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("product", id)
}

// applyRating refreshes a product's denormalized rating fields. Called by the
// review store after a review is written.
func (r *ProductRepository) applyRating(productID string, rating float64, reviewCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == productID {
			r.products[i].Rating = rating
			r.products[i].ReviewCount = reviewCount
			r.products[i].UpdatedAt = time.Now().UTC()
			return
		}
	}
}
