package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse.
const (
	// MaxQuantityPerItem is the maximum quantity allowed for a single cart item.
	MaxQuantityPerItem = 100
	// MaxItemsPerCart is the maximum number of distinct items allowed in a cart.
	MaxItemsPerCart = 50
)

// CartService implements the business logic for cart operations. Item
// details (name, price, image) are always resolved from the product store
// so clients cannot submit their own prices.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductReader
	logger   *slog.Logger
	cartTTL  time.Duration
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductReader, logger *slog.Logger, cartTTL time.Duration) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
		cartTTL:  cartTTL,
	}
}

// GetCart retrieves the cart for a user. If no cart exists, returns an empty cart.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a product to the user's cart. If the product is already in
// the cart, the quantities are merged. The requested total quantity must not
// exceed the available stock.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than 0")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product for cart: %w", err)
	}
	if !product.IsActive {
		return nil, apperrors.NotFound("product", productID)
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	newQty := quantity
	if idx := cart.FindItemIndex(productID); idx >= 0 {
		newQty = cart.Items[idx].Quantity + quantity
		if newQty > MaxQuantityPerItem {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerItem))
		}
		if newQty > product.Stock {
			return nil, apperrors.OutOfStock(productID)
		}
		cart.Items[idx].Quantity = newQty
		// Refresh the snapshot in case the product changed.
		cart.Items[idx].Name = product.Name
		cart.Items[idx].Price = product.Price
		cart.Items[idx].Image = product.Image
	} else {
		if len(cart.Items) >= MaxItemsPerCart {
			return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d items", MaxItemsPerCart))
		}
		if quantity > product.Stock {
			return nil, apperrors.OutOfStock(productID)
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     product.Image,
		})
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("quantity", newQty),
	)

	return cart, nil
}

// UpdateItemQuantity sets the quantity of a cart item. A quantity of 0
// removes the item.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart for update: %w", err)
	}

	idx := cart.FindItemIndex(productID)
	if idx < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}

	if quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("get product for cart: %w", err)
		}
		if quantity > product.Stock {
			return nil, apperrors.OutOfStock(productID)
		}
		cart.Items[idx].Quantity = quantity
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem removes a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart for remove: %w", err)
	}

	idx := cart.FindItemIndex(productID)
	if idx < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// ClearCart removes all items from the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("user_id", userID),
	)

	return nil
}

func (s *CartService) getOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) newEmptyCart(userID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     []domain.CartItem{},
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cartTTL),
	}
}

func (s *CartService) saveCart(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	cart.UpdatedAt = now
	cart.ExpiresAt = now.Add(s.cartTTL)

	if err := s.carts.Save(ctx, cart); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.Conflict("cart was modified concurrently, please retry")
		}
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
