package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/utafrali/storefront/internal/domain"
)

// ReviewRepository is an in-memory implementation of
// repository.ReviewRepository. When bound to a product store it keeps the
// products' denormalized rating fields in sync.
type ReviewRepository struct {
	mu       sync.RWMutex
	reviews  []domain.Review
	products *ProductRepository
}

// NewReviewRepository creates a review store preloaded with the given reviews.
// products may be nil when rating sync is not wanted (e.g. in tests).
func NewReviewRepository(seed []domain.Review, products *ProductRepository) *ReviewRepository {
	reviews := make([]domain.Review, len(seed))
	copy(reviews, seed)
	return &ReviewRepository{reviews: reviews, products: products}
}

// ListByProduct returns all reviews for a product, newest first.
func (r *ReviewRepository) ListByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Review, 0)
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// Create inserts a new review and refreshes the product's rating fields.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	r.mu.Lock()
	r.reviews = append(r.reviews, *review)
	var productReviews []domain.Review
	for _, rev := range r.reviews {
		if rev.ProductID == review.ProductID {
			productReviews = append(productReviews, rev)
		}
	}
	r.mu.Unlock()

	if r.products != nil {
		r.products.applyRating(review.ProductID, domain.AverageRating(productReviews), len(productReviews))
	}
	return nil
}
