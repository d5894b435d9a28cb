package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

const (
	// lowStockThreshold marks products that need restocking.
	lowStockThreshold = 5
	// recentOrderCount is the number of orders shown on the dashboard.
	recentOrderCount = 5
)

// DashboardStats aggregates the storefront metrics shown on the admin
// dashboard.
type DashboardStats struct {
	TotalProducts int              `json:"total_products"`
	TotalOrders   int              `json:"total_orders"`
	TotalUsers    int              `json:"total_users"`
	TotalRevenue  float64          `json:"total_revenue"`
	PendingOrders int              `json:"pending_orders"`
	RecentOrders  []domain.Order   `json:"recent_orders"`
	LowStock      []domain.Product `json:"low_stock"`
}

// AdminService computes dashboard aggregates over the stores.
type AdminService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(products repository.ProductRepository, orders repository.OrderRepository, users repository.UserRepository, logger *slog.Logger) *AdminService {
	return &AdminService{
		products: products,
		orders:   orders,
		users:    users,
		logger:   logger,
	}
}

// Dashboard returns the aggregate statistics for the admin dashboard.
// Revenue only counts orders whose payment has settled.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	orders, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	stats := &DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalUsers:    userCount,
		RecentOrders:  []domain.Order{},
		LowStock:      []domain.Product{},
	}

	for _, o := range orders {
		if o.PaymentStatus == domain.PaymentStatusPaid {
			stats.TotalRevenue += o.Total
		}
		if o.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
	}

	// Orders come back newest first.
	if len(orders) > recentOrderCount {
		stats.RecentOrders = orders[:recentOrderCount]
	} else {
		stats.RecentOrders = orders
	}

	for _, p := range products {
		if p.IsActive && p.Stock <= lowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
	}

	return stats, nil
}
