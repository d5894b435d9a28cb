// Package service implements the business logic of the storefront:
// catalog queries, cart management, checkout, orders, reviews, and the
// admin dashboard aggregates.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/query"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CatalogService implements product browsing, single-product lookup, and
// the admin-side product management operations.
type CatalogService struct {
	products   repository.ProductRepository
	categories []domain.Category
	producer   *event.Producer
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service. The category list is a
// fixed collection loaded at startup alongside the product seed data.
func NewCatalogService(products repository.ProductRepository, categories []domain.Category, producer *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		producer:   producer,
		logger:     logger,
	}
}

// SearchProducts runs a catalog query over the product collection and
// returns the matching page along with pagination and facet metadata.
func (s *CatalogService) SearchProducts(ctx context.Context, q query.Query) (*query.Result, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return query.Run(products, q), nil
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	return product, nil
}

// FeaturedProducts returns the active products flagged as featured, capped
// at the given limit. A non-positive limit returns all featured products.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	featured := make([]domain.Product, 0, 4)
	for _, p := range products {
		if p.Featured && p.IsActive {
			featured = append(featured, p)
		}
	}

	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}

	return featured, nil
}

// ListCategories returns the category collection.
func (s *CatalogService) ListCategories(_ context.Context) []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ProductInput holds the parameters for creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Featured    bool    `json:"featured"`
}

// CreateProduct adds a new product to the catalog.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    strings.ToLower(input.Category),
		Stock:       input.Stock,
		Featured:    input.Featured,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct modifies an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.Category = strings.ToLower(input.Category)
	product.Stock = input.Stock
	product.Featured = input.Featured
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.producer.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
	)

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("product id is required")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

func validateProductInput(input ProductInput) error {
	if input.Name == "" {
		return apperrors.InvalidInput("name is required")
	}
	if input.Price <= 0 {
		return apperrors.InvalidInput("price must be greater than 0")
	}
	if input.Category == "" {
		return apperrors.InvalidInput("category is required")
	}
	if input.Stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}
	return nil
}
