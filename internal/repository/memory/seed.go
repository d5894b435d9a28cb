package memory

import (
	"time"

	"github.com/utafrali/storefront/internal/domain"
)

// Seed fixtures for development and tests. In production these collections
// would come from a real database; the stores are seeded with them so the
// storefront is browsable out of the box.

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SeedProducts returns the fixture product catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod1",
			Name:        "Wireless Bluetooth Headphones",
			Description: "Premium wireless headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
			Price:       99.99,
			Image:       "https://images.example.com/products/headphones.jpg",
			Category:    "electronics",
			Stock:       25,
			Rating:      4.5,
			ReviewCount: 2,
			Featured:    true,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 2),
			UpdatedAt:   date(2024, 1, 2),
		},
		{
			ID:          "prod2",
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracking with heart rate monitoring, GPS, and smartphone integration. Water-resistant design.",
			Price:       249.99,
			Image:       "https://images.example.com/products/watch.jpg",
			Category:    "electronics",
			Stock:       15,
			Rating:      4.8,
			ReviewCount: 1,
			Featured:    true,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 5),
			UpdatedAt:   date(2024, 1, 5),
		},
		{
			ID:          "prod3",
			Name:        "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable organic cotton t-shirt. Available in multiple colors and sizes.",
			Price:       29.99,
			Image:       "https://images.example.com/products/tshirt.jpg",
			Category:    "clothing",
			Stock:       50,
			Rating:      4.2,
			ReviewCount: 1,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 8),
			UpdatedAt:   date(2024, 1, 8),
		},
		{
			ID:          "prod4",
			Name:        "Professional Coffee Maker",
			Description: "Programmable coffee maker with built-in grinder and thermal carafe. Makes perfect coffee every time.",
			Price:       179.99,
			Image:       "https://images.example.com/products/coffeemaker.jpg",
			Category:    "home",
			Stock:       12,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 12),
			UpdatedAt:   date(2024, 1, 12),
		},
		{
			ID:          "prod5",
			Name:        "Bestselling Novel Collection",
			Description: "Collection of three bestselling novels from award-winning authors. Perfect for book lovers.",
			Price:       39.99,
			Image:       "https://images.example.com/products/books.jpg",
			Category:    "books",
			Stock:       30,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 15),
			UpdatedAt:   date(2024, 1, 15),
		},
		{
			ID:          "prod6",
			Name:        "Yoga Mat Premium",
			Description: "Non-slip premium yoga mat with extra cushioning. Eco-friendly materials and carrying strap included.",
			Price:       49.99,
			Image:       "https://images.example.com/products/yogamat.jpg",
			Category:    "sports",
			Stock:       20,
			Featured:    true,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 18),
			UpdatedAt:   date(2024, 1, 18),
		},
		{
			ID:          "prod7",
			Name:        "Wireless Gaming Mouse",
			Description: "High-precision wireless gaming mouse with customizable RGB lighting and programmable buttons.",
			Price:       79.99,
			Image:       "https://images.example.com/products/mouse.jpg",
			Category:    "electronics",
			Stock:       18,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 20),
			UpdatedAt:   date(2024, 1, 20),
		},
		{
			ID:          "prod8",
			Name:        "Designer Jeans",
			Description: "Premium designer jeans with perfect fit and comfort. Made from high-quality denim.",
			Price:       89.99,
			Image:       "https://images.example.com/products/jeans.jpg",
			Category:    "clothing",
			Stock:       35,
			IsActive:    true,
			CreatedAt:   date(2024, 1, 22),
			UpdatedAt:   date(2024, 1, 22),
		},
	}
}

// SeedCategories returns the fixture category list.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "electronics", Name: "Electronics", Slug: "electronics", Description: "Latest gadgets and electronic devices"},
		{ID: "clothing", Name: "Clothing", Slug: "clothing", Description: "Fashion and apparel for all occasions"},
		{ID: "home", Name: "Home & Garden", Slug: "home-garden", Description: "Everything for your home and garden"},
		{ID: "books", Name: "Books", Slug: "books", Description: "Books, magazines, and educational materials"},
		{ID: "sports", Name: "Sports & Outdoors", Slug: "sports-outdoors", Description: "Sports equipment and outdoor gear"},
	}
}

// SeedUsers returns the fixture user accounts.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "user1", Email: "john.doe@example.com", Name: "John Doe", Role: domain.RoleCustomer, CreatedAt: date(2024, 1, 1)},
		{ID: "user2", Email: "jane.smith@example.com", Name: "Jane Smith", Role: domain.RoleCustomer, CreatedAt: date(2024, 1, 5)},
		{ID: "user3", Email: "mike.johnson@example.com", Name: "Mike Johnson", Role: domain.RoleCustomer, CreatedAt: date(2024, 1, 10)},
		{ID: "admin1", Email: "admin@example.com", Name: "Admin User", Role: domain.RoleAdmin, CreatedAt: date(2023, 12, 1)},
	}
}

// SeedReviews returns the fixture product reviews.
func SeedReviews() []domain.Review {
	return []domain.Review{
		{ID: "rev1", ProductID: "prod1", UserID: "user1", UserName: "John Doe", Rating: 5, Comment: "Excellent product! Works perfectly and arrived quickly.", CreatedAt: date(2024, 1, 15)},
		{ID: "rev2", ProductID: "prod1", UserID: "user2", UserName: "Jane Smith", Rating: 4, Comment: "Good quality, but could be improved in some areas.", CreatedAt: date(2024, 1, 20)},
		{ID: "rev3", ProductID: "prod2", UserID: "user1", UserName: "John Doe", Rating: 5, Comment: "Amazing sound quality! Highly recommended.", CreatedAt: date(2024, 1, 18)},
		{ID: "rev4", ProductID: "prod3", UserID: "user3", UserName: "Mike Johnson", Rating: 4, Comment: "Comfortable and stylish. Great value for money.", CreatedAt: date(2024, 1, 22)},
	}
}

// SeedOrders returns the fixture order history.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:     "order1",
			UserID: "user1",
			Items: []domain.OrderItem{
				{ProductID: "prod1", Name: "Wireless Bluetooth Headphones", Price: 99.99, Quantity: 1},
				{ProductID: "prod3", Name: "Organic Cotton T-Shirt", Price: 29.99, Quantity: 2},
			},
			Total:         159.97,
			Status:        domain.OrderStatusDelivered,
			PaymentStatus: domain.PaymentStatusPaid,
			PaymentMethod: "card",
			ShippingAddress: &domain.Address{
				Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA",
			},
			CreatedAt: date(2024, 1, 10),
			UpdatedAt: date(2024, 1, 14),
		},
		{
			ID:     "order2",
			UserID: "user2",
			Items: []domain.OrderItem{
				{ProductID: "prod2", Name: "Smart Fitness Watch", Price: 249.99, Quantity: 1},
			},
			Total:         249.99,
			Status:        domain.OrderStatusShipped,
			PaymentStatus: domain.PaymentStatusPaid,
			PaymentMethod: "paypal",
			ShippingAddress: &domain.Address{
				Street: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA",
			},
			CreatedAt: date(2024, 1, 15),
			UpdatedAt: date(2024, 1, 17),
		},
		{
			ID:     "order3",
			UserID: "user3",
			Items: []domain.OrderItem{
				{ProductID: "prod4", Name: "Professional Coffee Maker", Price: 179.99, Quantity: 1},
				{ProductID: "prod6", Name: "Yoga Mat Premium", Price: 49.99, Quantity: 1},
			},
			Total:         229.98,
			Status:        domain.OrderStatusProcessing,
			PaymentStatus: domain.PaymentStatusPaid,
			PaymentMethod: "card",
			ShippingAddress: &domain.Address{
				Street: "789 Pine St", City: "Chicago", State: "IL", ZipCode: "60601", Country: "USA",
			},
			CreatedAt: date(2024, 1, 20),
			UpdatedAt: date(2024, 1, 20),
		},
	}
}
