package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func testCart(userID string) *domain.Cart {
	return &domain.Cart{
		ID:     "cart-" + userID,
		UserID: userID,
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Keyboard", Price: 49.99, Quantity: 2},
		},
	}
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo := NewCartRepository()

	_, err := repo.Get(context.Background(), "user1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo := NewCartRepository()

	require.NoError(t, repo.Save(context.Background(), testCart("user1")))

	got, err := repo.Get(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCartRepository_Save_IncrementsVersion(t *testing.T) {
	repo := NewCartRepository()

	cart := testCart("user1")
	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Get(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)

	got.Items[0].Quantity = 3
	require.NoError(t, repo.Save(context.Background(), got))

	again, err := repo.Get(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Version)
	assert.Equal(t, 3, again.Items[0].Quantity)
}

func TestCartRepository_Save_VersionConflict(t *testing.T) {
	repo := NewCartRepository()

	require.NoError(t, repo.Save(context.Background(), testCart("user1")))

	// A writer holding a stale version must be rejected.
	stale := testCart("user1")
	stale.Version = 0
	err := repo.Save(context.Background(), stale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCartRepository_Get_ReturnsCopy(t *testing.T) {
	repo := NewCartRepository()
	require.NoError(t, repo.Save(context.Background(), testCart("user1")))

	got, err := repo.Get(context.Background(), "user1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99

	again, err := repo.Get(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository()
	require.NoError(t, repo.Save(context.Background(), testCart("user1")))

	require.NoError(t, repo.Delete(context.Background(), "user1"))

	_, err := repo.Get(context.Background(), "user1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCartRepository_Delete_MissingIsNoop(t *testing.T) {
	repo := NewCartRepository()
	assert.NoError(t, repo.Delete(context.Background(), "nobody"))
}
