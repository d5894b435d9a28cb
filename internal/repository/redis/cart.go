// Package redis provides a Redis-backed cart store. Carts are stored as JSON
// blobs keyed by user ID with a TTL, and writes are guarded by an optimistic
// version check inside a WATCH transaction.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/utafrali/storefront/pkg/errors"

	"github.com/utafrali/storefront/internal/domain"
)

const keyPrefix = "cart:"

// CartRepository implements repository.CartRepository using Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a new Redis-backed cart repository.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{client: client, ttl: ttl}
}

// Get retrieves a cart by user ID from Redis.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("cart", userID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Save persists a cart with the configured TTL. The stored version must match
// the incoming cart's version or the write is rejected with a conflict.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	key := keyPrefix + cart.UserID

	txn := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis get cart for save: %w", err)
		}
		if err == nil {
			var stored domain.Cart
			if uerr := json.Unmarshal(current, &stored); uerr == nil && stored.Version != cart.Version {
				return apperrors.Conflict("cart was modified concurrently, retry the operation")
			}
		}

		next := *cart
		next.Version = cart.Version + 1
		data, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("marshal cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txn, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return apperrors.Conflict("cart was modified concurrently, retry the operation")
		}
		return err
	}
	return nil
}

// Delete removes a cart from Redis by user ID.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
