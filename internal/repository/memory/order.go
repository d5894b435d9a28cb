package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "github.com/utafrali/storefront/pkg/errors"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

// OrderRepository is an in-memory implementation of
// repository.OrderRepository.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderRepository creates an order store preloaded with the given orders.
func NewOrderRepository(seed []domain.Order) *OrderRepository {
	orders := make([]domain.Order, len(seed))
	copy(orders, seed)
	return &OrderRepository{orders: orders}
}

// Create inserts a new order into the store.
func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return apperrors.AlreadyExists("order", "id", order.ID)
		}
	}
	r.orders = append(r.orders, *order)
	return nil
}

// GetByID retrieves an order by its unique identifier.
func (r *OrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := cloneOrder(r.orders[i])
			return &o, nil
		}
	}
	return nil, apperrors.NotFound("order", id)
}

// List returns orders matching the filter, sorted by creation time with the
// most recent first. The optional Limit caps the result after sorting.
func (r *OrderRepository) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Order, 0, len(r.orders))
	for i := range r.orders {
		o := r.orders[i]
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		matched = append(matched, cloneOrder(o))
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

// UpdateStatus changes the status and/or payment status of an order. Empty
// values leave the corresponding field untouched.
func (r *OrderRepository) UpdateStatus(_ context.Context, id, status, paymentStatus string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		if status != "" {
			r.orders[i].Status = status
		}
		if paymentStatus != "" {
			r.orders[i].PaymentStatus = paymentStatus
		}
		r.orders[i].UpdatedAt = time.Now().UTC()
		o := cloneOrder(r.orders[i])
		return &o, nil
	}
	return nil, apperrors.NotFound("order", id)
}

// Count returns the total number of orders in the store.
func (r *OrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}

// cloneOrder deep-copies an order so callers cannot mutate stored items.
func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		o.ShippingAddress = &addr
	}
	return o
}
