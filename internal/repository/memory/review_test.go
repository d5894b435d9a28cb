package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
)

func testReview(id, productID string, rating int, createdAt time.Time) domain.Review {
	return domain.Review{
		ID:        id,
		ProductID: productID,
		UserID:    "user1",
		UserName:  "Alice",
		Rating:    rating,
		Comment:   "fine",
		CreatedAt: createdAt,
	}
}

func TestReviewRepository_ListByProduct_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := NewReviewRepository([]domain.Review{
		testReview("r1", "p1", 4, base),
		testReview("r2", "p2", 5, base.Add(time.Hour)),
		testReview("r3", "p1", 5, base.Add(2*time.Hour)),
	}, nil)

	got, err := repo.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r3", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
}

func TestReviewRepository_ListByProduct_Empty(t *testing.T) {
	repo := NewReviewRepository(nil, nil)

	got, err := repo.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReviewRepository_Create(t *testing.T) {
	repo := NewReviewRepository(nil, nil)

	rev := testReview("r1", "p1", 3, time.Now())
	require.NoError(t, repo.Create(context.Background(), &rev))

	got, err := repo.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestReviewRepository_Create_SyncsProductRating(t *testing.T) {
	products := NewProductRepository([]domain.Product{testProduct("p1", "Keyboard", 49.99)})
	repo := NewReviewRepository(nil, products)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rev1 := testReview("r1", "p1", 4, base)
	require.NoError(t, repo.Create(context.Background(), &rev1))
	rev2 := testReview("r2", "p1", 5, base.Add(time.Hour))
	require.NoError(t, repo.Create(context.Background(), &rev2))

	got, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}
	// 13/3 = 4.333..., rounded to 4.3.
	assert.Equal(t, 4.3, domain.AverageRating(reviews))
	assert.Equal(t, 0.0, domain.AverageRating(nil))
}
