package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newTestReviewService(reviews *mockReviewRepository, products *mockProductRepository) *ReviewService {
	return NewReviewService(reviews, products, newTestLogger())
}

func TestListReviews_Success(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)
	ctx := context.Background()

	products.On("GetByID", ctx, "p1").Return(testCartProduct("p1", "Laptop", 999.99, 5), nil)
	reviews.On("ListByProduct", ctx, "p1").Return([]domain.Review{
		{ID: "r1", ProductID: "p1", Rating: 5, CreatedAt: time.Now().UTC()},
	}, nil)

	got, err := svc.ListReviews(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestListReviews_ProductMissing(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)
	ctx := context.Background()

	products.On("GetByID", ctx, "nope").Return(nil, apperrors.NotFound("product", "nope"))

	_, err := svc.ListReviews(ctx, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	reviews.AssertNotCalled(t, "ListByProduct")
}

func TestCreateReview_Success(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)
	ctx := context.Background()

	products.On("GetByID", ctx, "p1").Return(testCartProduct("p1", "Laptop", 999.99, 5), nil)
	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)

	user := &domain.User{ID: "user-1", Name: "Jamie"}
	review, err := svc.CreateReview(ctx, "p1", user, CreateReviewInput{
		Rating:  4,
		Comment: "  solid build quality  ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "Jamie", review.UserName)
	assert.Equal(t, "solid build quality", review.Comment, "comment is trimmed")
	reviews.AssertExpectations(t)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Name: "Jamie"}

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview(ctx, "p1", user, CreateReviewInput{Rating: rating})
		require.Error(t, err, "rating %d", rating)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}

	reviews.AssertNotCalled(t, "Create")
}

func TestCreateReview_RequiresUser(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)

	_, err := svc.CreateReview(context.Background(), "p1", nil, CreateReviewInput{Rating: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCreateReview_CommentTooLong(t *testing.T) {
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newTestReviewService(reviews, products)
	user := &domain.User{ID: "user-1", Name: "Jamie"}

	long := strings.Repeat("a", MaxCommentLength+1)
	_, err := svc.CreateReview(context.Background(), "p1", user, CreateReviewInput{Rating: 5, Comment: long})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
