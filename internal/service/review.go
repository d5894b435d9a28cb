package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// MaxCommentLength bounds review comment size.
const MaxCommentLength = 2000

// ReviewService implements product review listing and creation.
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductReader
	logger   *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductReader, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
		logger:   logger,
	}
}

// ListReviews returns all reviews for a product, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("get product for reviews: %w", err)
	}

	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

// CreateReviewInput holds the parameters for posting a review.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// CreateReview posts a review for a product. The rating must be between
// 1 and 5 inclusive.
func (s *ReviewService) CreateReview(ctx context.Context, productID string, user *domain.User, input CreateReviewInput) (*domain.Review, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if user == nil || user.ID == "" {
		return nil, apperrors.Unauthorized("authentication required to post a review")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if len(input.Comment) > MaxCommentLength {
		return nil, apperrors.InvalidInput(fmt.Sprintf("comment must not exceed %d characters", MaxCommentLength))
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("get product for review: %w", err)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("product_id", productID),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}
