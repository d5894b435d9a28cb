package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	paymentmock "github.com/utafrali/storefront/internal/payment/mock"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/service"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/httputil"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
)

// ============================================================================
// Mock repositories
// ============================================================================

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id, status, paymentStatus string) (*domain.Order, error) {
	args := m.Called(ctx, id, status, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// ============================================================================
// Test helpers
// ============================================================================

type testRepos struct {
	products *mockProductRepository
	orders   *mockOrderRepository
	carts    *mockCartRepository
	reviews  *mockReviewRepository
	users    *mockUserRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		products: new(mockProductRepository),
		orders:   new(mockOrderRepository),
		carts:    new(mockCartRepository),
		reviews:  new(mockReviewRepository),
		users:    new(mockUserRepository),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testEventProducer() *event.Producer {
	logger := testLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:19092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}

var testCategories = []domain.Category{
	{ID: "cat-1", Name: "Electronics", Slug: "electronics"},
	{ID: "cat-2", Name: "Clothing", Slug: "clothing"},
}

// setupRouter builds the production router over mock repositories so route
// layout, auth middleware, and handlers are exercised together.
func setupRouter(repos *testRepos) http.Handler {
	logger := testLogger()
	producer := testEventProducer()
	provider := paymentmock.NewProviderWithDelay(0)

	svcs := Services{
		Catalog:  service.NewCatalogService(repos.products, testCategories, producer, logger),
		Cart:     service.NewCartService(repos.carts, repos.products, logger, 24*time.Hour),
		Checkout: service.NewCheckoutService(repos.carts, repos.products, repos.orders, provider, producer, logger),
		Orders:   service.NewOrderService(repos.orders, producer, logger),
		Reviews:  service.NewReviewService(repos.reviews, repos.products, logger),
		Admin:    service.NewAdminService(repos.products, repos.orders, repos.users, logger),
	}

	return NewRouter(svcs, repos.users, health.NewHandler(), logger)
}

// decodeResponse reads the response body into the standard Response struct.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

func asCustomer(repos *testRepos, req *http.Request, userID string) {
	req.Header.Set("X-User-ID", userID)
	repos.users.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:   userID,
		Name: "Test Customer",
		Role: domain.RoleCustomer,
	}, nil)
}

func asAdmin(repos *testRepos, req *http.Request, userID string) {
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Role", domain.RoleAdmin)
	repos.users.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:   userID,
		Name: "Test Admin",
		Role: domain.RoleAdmin,
	}, nil)
}

func storeProduct(id, name, category string, price float64, stock int) *domain.Product {
	now := time.Now().UTC()
	return &domain.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func storeCart(userID string, items ...domain.CartItem) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        "cart-001",
		UserID:    userID,
		Items:     items,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func storeOrder(id, userID, status string) *domain.Order {
	now := time.Now().UTC()
	return &domain.Order{
		ID:     id,
		UserID: userID,
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Laptop", Price: 999.99, Quantity: 1},
		},
		Total:         999.99,
		Status:        status,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentMethod: "card",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func notFoundErr(resource, id string) error {
	return apperrors.NotFound(resource, id)
}
