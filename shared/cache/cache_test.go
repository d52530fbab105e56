package cache_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

type roomSnapshot struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	redisCache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "room:get:1", roomSnapshot{Name: "Villa", Rate: "250"}, 60))

	var got roomSnapshot
	require.NoError(t, redisCache.Get(ctx, "room:get:1", &got))
	assert.Equal(t, "Villa", got.Name)

	require.NoError(t, redisCache.Save(ctx, "plain", "value", 60))

	var plain string
	require.NoError(t, redisCache.Get(ctx, "plain", &plain))
	assert.Equal(t, "value", plain)
}

func TestRedisCache_GetMissing(t *testing.T) {
	redisCache, _ := newCache(t)

	var got roomSnapshot
	err := redisCache.Get(context.Background(), "missing", &got)

	assert.True(t, errors.Is(err, cache.Nil))
	assert.True(t, cache.IsMiss(err))
}

func TestRedisCache_Clear(t *testing.T) {
	redisCache, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "booking:gets:a", 1, 60))
	require.NoError(t, redisCache.Save(ctx, "booking:gets:b", 2, 60))
	require.NoError(t, redisCache.Save(ctx, "room:gets:a", 3, 60))

	require.NoError(t, redisCache.Clear(ctx, "booking:gets*"))

	assert.False(t, server.Exists("booking:gets:a"))
	assert.False(t, server.Exists("booking:gets:b"))
	assert.True(t, server.Exists("room:gets:a"))
}

func TestRedisCache_Increment(t *testing.T) {
	redisCache, server := newCache(t)
	ctx := context.Background()

	first, err := redisCache.Increment(ctx, "limiter:ip", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := redisCache.Increment(ctx, "limiter:ip", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
	assert.Positive(t, server.TTL("limiter:ip"))
}
