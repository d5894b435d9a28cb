package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/payment"
	paymentmock "github.com/utafrali/storefront/internal/payment/mock"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

type decliningProvider struct{}

func (decliningProvider) Name() string { return "declining" }

func (decliningProvider) Charge(_ context.Context, _ *payment.ChargeInput) (*payment.ChargeResult, error) {
	return &payment.ChargeResult{
		Status:        payment.StatusFailed,
		FailureReason: "card declined",
	}, nil
}

func newTestCheckoutService(t *testing.T, carts *mockCartRepository, products *mockProductRepository, orders *mockOrderRepository, provider payment.Provider) *CheckoutService {
	if provider == nil {
		provider = paymentmock.NewProviderWithDelay(0)
	}
	return NewCheckoutService(carts, products, orders, provider, newTestProducer(t), newTestLogger())
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		ShippingAddress: domain.Address{
			Street:  "123 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
			Country: "US",
		},
		PaymentMethod: "card",
	}
}

func TestCheckout_Success(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)
	ctx := context.Background()

	carts.On("Get", ctx, "user-1").Return(existingCart("user-1",
		domain.CartItem{ProductID: "p1", Name: "Laptop", Price: 899.99, Quantity: 2},
		domain.CartItem{ProductID: "p2", Name: "Mouse", Price: 29.99, Quantity: 1},
	), nil)
	products.On("GetByID", ctx, "p1").Return(testCartProduct("p1", "Laptop", 999.99, 5), nil)
	products.On("GetByID", ctx, "p2").Return(testCartProduct("p2", "Mouse", 29.99, 10), nil)
	orders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)
	products.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Twice()
	carts.On("Delete", ctx, "user-1").Return(nil)

	order, err := svc.Checkout(ctx, "user-1", validCheckoutInput())
	require.NoError(t, err)

	// Total uses the store price, not the cart snapshot.
	assert.InDelta(t, 2*999.99+29.99, order.Total, 0.001)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "card", order.PaymentMethod)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "Springfield", order.ShippingAddress.City)

	carts.AssertExpectations(t)
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)
	ctx := context.Background()

	carts.On("Get", ctx, "user-1").Return(existingCart("user-1"), nil)

	_, err := svc.Checkout(ctx, "user-1", validCheckoutInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	orders.AssertNotCalled(t, "Create")
}

func TestCheckout_NoCartAtAll(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)
	ctx := context.Background()

	carts.On("Get", ctx, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))

	_, err := svc.Checkout(ctx, "user-1", validCheckoutInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_StockShortfall(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)
	ctx := context.Background()

	carts.On("Get", ctx, "user-1").Return(existingCart("user-1",
		domain.CartItem{ProductID: "p1", Name: "Laptop", Price: 999.99, Quantity: 3},
	), nil)
	products.On("GetByID", ctx, "p1").Return(testCartProduct("p1", "Laptop", 999.99, 2), nil)

	_, err := svc.Checkout(ctx, "user-1", validCheckoutInput())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OUT_OF_STOCK", appErr.Code)
	orders.AssertNotCalled(t, "Create")
	carts.AssertNotCalled(t, "Delete")
}

func TestCheckout_PaymentDeclined(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, decliningProvider{})
	ctx := context.Background()

	carts.On("Get", ctx, "user-1").Return(existingCart("user-1",
		domain.CartItem{ProductID: "p1", Name: "Laptop", Price: 999.99, Quantity: 1},
	), nil)
	products.On("GetByID", ctx, "p1").Return(testCartProduct("p1", "Laptop", 999.99, 5), nil)

	_, err := svc.Checkout(ctx, "user-1", validCheckoutInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)
	orders.AssertNotCalled(t, "Create")
	carts.AssertNotCalled(t, "Delete")
}

func TestCheckout_InvalidPaymentMethod(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)

	input := validCheckoutInput()
	input.PaymentMethod = "barter"

	_, err := svc.Checkout(context.Background(), "user-1", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_IncompleteAddress(t *testing.T) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(t, carts, products, orders, nil)

	input := validCheckoutInput()
	input.ShippingAddress.City = ""

	_, err := svc.Checkout(context.Background(), "user-1", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
