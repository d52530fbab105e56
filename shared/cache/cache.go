package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatch             = 100
	Nil                   = redis.Nil
)

// RedisCache stores JSON encoded values; strings are stored as is. Durations are in seconds.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
	Increment(ctx context.Context, key string, duration int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (cache *redisCache) scope(ctx context.Context, operation, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+operation)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

// IsMiss reports whether err means the key was absent.
func IsMiss(err error) bool {
	return errors.Is(err, Nil)
}

// Clear removes every key matching the glob pattern, one SCAN page at a time.
func (cache *redisCache) Clear(ctx context.Context, pattern string) error {
	ctx, scope := cache.scope(ctx, "Clear", pattern)
	defer scope.End()

	var cursor uint64

	for {
		keys, next, err := cache.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		if len(keys) > 0 {
			if err := cache.client.Unlink(ctx, keys...).Err(); err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Str("pattern", pattern).Msg("failed to unlink cache keys")

				return fmt.Errorf("failed to delete cache value: %w", err)
			}
		}

		if cursor = next; cursor == 0 {
			return nil
		}
	}
}

// Increment bumps a counter; the expiry is only set when the counter is created.
func (cache *redisCache) Increment(ctx context.Context, key string, duration int) (int64, error) {
	ctx, scope := cache.scope(ctx, "Increment", key)
	defer scope.End()

	count, err := cache.client.Incr(ctx, key).Result()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	if count == 1 {
		if err := cache.client.Expire(ctx, key, time.Duration(duration)*time.Second).Err(); err != nil {
			scope.TraceError(err)

			return count, fmt.Errorf("failed to set cache expiry: %w", err)
		}
	}

	return count, nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) error {
	ctx, scope := cache.scope(ctx, "Delete", key)
	defer scope.End()

	if err := cache.client.Del(ctx, key).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache key")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the stored value into value. A missing key returns an error matching IsMiss.
func (cache *redisCache) Get(ctx context.Context, key string, value any) error {
	ctx, scope := cache.scope(ctx, "Get", key)
	defer scope.End()

	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !IsMiss(err) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if target, ok := value.(*string); ok {
		*target = string(raw)

		return nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to decode cached value")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) error {
	ctx, scope := cache.scope(ctx, "Save", key)
	defer scope.End()

	var payload []byte

	if str, ok := value.(string); ok {
		payload = []byte(str)
	} else {
		encoded, err := json.Marshal(value)
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}

		payload = encoded
	}

	if err := cache.client.Set(ctx, key, payload, time.Duration(duration)*time.Second).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cached")

	return nil
}
