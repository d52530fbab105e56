package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/internal/domains/cart/model"
	"hotel/shared/cache"
)

type Cart interface {
	Save(ctx context.Context, cart model.Cart) error
	// Get reports false when the cart does not exist or has expired.
	Get(ctx context.Context, id string) (model.Cart, bool, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   int
}

func New(redisCache cache.RedisCache, cfg *config.Config) Cart {
	return &repositoryImpl{
		cache: redisCache,
		ttl:   cfg.Cart.TTLSeconds,
	}
}

func key(id string) string {
	return model.KeyPrefix + ":" + id
}

// Save refreshes the cart's TTL on every write.
func (r *repositoryImpl) Save(ctx context.Context, cart model.Cart) error {
	if err := r.cache.Save(ctx, key(cart.ID), cart, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Cart, bool, error) {
	var cart model.Cart

	if err := r.cache.Get(ctx, key(id), &cart); err != nil {
		if errors.Is(err, cache.Nil) {
			return cart, false, nil
		}

		return cart, false, fmt.Errorf("failed to get cart: %w", err)
	}

	return cart, true, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
