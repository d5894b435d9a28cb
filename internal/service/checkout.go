package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/payment"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// Payment methods accepted at checkout.
var acceptedPaymentMethods = map[string]bool{
	"card":   true,
	"paypal": true,
}

// CheckoutService turns a cart into a paid order: it validates the cart
// against live product data, charges the payment provider, persists the
// order, decrements stock, and clears the cart.
type CheckoutService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	provider payment.Provider
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	provider payment.Provider,
	producer *event.Producer,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		products: products,
		orders:   orders,
		provider: provider,
		producer: producer,
		logger:   logger,
	}
}

// CheckoutInput holds the parameters for placing an order.
type CheckoutInput struct {
	ShippingAddress domain.Address `json:"shipping_address" validate:"required"`
	PaymentMethod   string         `json:"payment_method" validate:"required,oneof=card paypal"`
}

// Checkout places an order from the user's current cart.
//
// Prices are re-read from the product store at checkout time so a stale
// cart snapshot cannot fix the price. Stock is validated for every line
// before the charge is attempted.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, input CheckoutInput) (*domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if err := validateCheckoutInput(input); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidInput("cart is empty")
		}
		return nil, fmt.Errorf("get cart for checkout: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	// Revalidate every line against the product store.
	items := make([]domain.OrderItem, len(cart.Items))
	stocked := make([]*domain.Product, len(cart.Items))
	var total float64
	for i, item := range cart.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("get product %s for checkout: %w", item.ProductID, err)
		}
		if !product.IsActive {
			return nil, apperrors.NotFound("product", item.ProductID)
		}
		if item.Quantity > product.Stock {
			return nil, apperrors.OutOfStock(item.ProductID)
		}

		items[i] = domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		}
		total += items[i].LineTotal()
		stocked[i] = product
	}

	orderID := uuid.New().String()

	charge, err := s.provider.Charge(ctx, &payment.ChargeInput{
		Amount:      total,
		Currency:    "USD",
		Method:      input.PaymentMethod,
		Description: "order " + orderID,
	})
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}
	if charge.Status != payment.StatusSucceeded {
		s.logger.WarnContext(ctx, "payment declined",
			slog.String("user_id", userID),
			slog.String("provider", s.provider.Name()),
			slog.String("reason", charge.FailureReason),
		)
		return nil, apperrors.PaymentFailed(charge.FailureReason)
	}

	now := time.Now().UTC()
	addr := input.ShippingAddress
	order := &domain.Order{
		ID:              orderID,
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: &addr,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Decrement stock after the order is recorded. A failed decrement is
	// logged and reconciled out of band rather than failing the paid order.
	for i, product := range stocked {
		product.Stock -= items[i].Quantity
		product.UpdatedAt = now
		if err := s.products.Update(ctx, product); err != nil {
			s.logger.ErrorContext(ctx, "failed to decrement stock",
				slog.String("order_id", order.ID),
				slog.String("product_id", product.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("order_id", order.ID),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.created event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Float64("total", order.Total),
		slog.String("provider", s.provider.Name()),
	)

	return order, nil
}

func validateCheckoutInput(input CheckoutInput) error {
	if !acceptedPaymentMethods[input.PaymentMethod] {
		return apperrors.InvalidInput("payment method must be one of: card, paypal")
	}

	addr := input.ShippingAddress
	if addr.Street == "" || addr.City == "" || addr.ZipCode == "" || addr.Country == "" {
		return apperrors.InvalidInput("shipping address must include street, city, zip code, and country")
	}
	return nil
}
