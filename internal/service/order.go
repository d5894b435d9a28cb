package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/query"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// OrderService implements order retrieval and status management. Orders are
// created by the checkout flow, not directly through this service.
type OrderService struct {
	repo     repository.OrderRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, producer *event.Producer, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// GetOrder retrieves an order by its ID. Customers may only see their own
// orders; admins may see any order.
func (s *OrderService) GetOrder(ctx context.Context, id string, requester *domain.User) (*domain.Order, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}

	if requester != nil && !requester.IsAdmin() && order.UserID != requester.ID {
		// Hide existence of other users' orders.
		return nil, apperrors.NotFound("order", id)
	}

	return order, nil
}

// ListOrdersInput holds filter and pagination parameters for order listings.
type ListOrdersInput struct {
	UserID string
	Status string
	Page   int
	Limit  int
}

// ListOrders returns a page of orders matching the filter, newest first.
func (s *OrderService) ListOrders(ctx context.Context, input ListOrdersInput) ([]domain.Order, query.Pagination, error) {
	filter := repository.OrderFilter{}
	if input.UserID != "" {
		filter.UserID = &input.UserID
	}
	if input.Status != "" {
		if !domain.IsValidStatus(input.Status) {
			return nil, query.Pagination{}, apperrors.InvalidInput(
				fmt.Sprintf("invalid status %q, must be one of: %s", input.Status, strings.Join(domain.ValidStatuses(), ", ")))
		}
		filter.Status = &input.Status
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("list orders: %w", err)
	}

	page, pagination := query.Paginate(orders, input.Page, input.Limit)
	return page, pagination, nil
}

// UpdateOrderStatus transitions the order to a new status with validation.
// Cancelling an unpaid order also cancels its payment.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, newStatus string) (*domain.Order, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}
	if !domain.IsValidStatus(newStatus) {
		return nil, apperrors.InvalidInput(
			fmt.Sprintf("invalid status %q, must be one of: %s", newStatus, strings.Join(domain.ValidStatuses(), ", ")))
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order for status update: %w", err)
	}

	if !order.CanTransitionTo(newStatus) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cannot transition from %q to %q", order.Status, newStatus))
	}

	oldStatus := order.Status

	paymentStatus := order.PaymentStatus
	if newStatus == domain.OrderStatusCancelled && order.PaymentStatus == domain.PaymentStatusPending {
		paymentStatus = domain.PaymentStatusCancelled
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus, paymentStatus)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if err := s.producer.PublishOrderStatusChanged(ctx, id, oldStatus, newStatus); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.status_changed event",
			slog.String("order_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
	)

	return updated, nil
}
