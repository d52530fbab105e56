package repository_test

import (
	"context"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/repository"
	offerModel "hotel/internal/domains/offer/model"
	"hotel/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.Cart, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cart.TTLSeconds = 3600

	return repository.New(cache.NewRedisCache(client, mocks.NewOtel()), cfg), server
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo, server := newRepo(t)
	ctx := context.Background()
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	cart := model.Cart{
		ID:       "c-1",
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Guests:   2,
		Rooms: []model.RoomLine{
			{LineID: "l-1", RoomID: "r-1", Name: "Garden Villa", Category: "villa", NightlyRate: decimal.NewFromInt(200)},
		},
		Coupon: &offerModel.Offer{
			Code:        "VILLA10",
			Tier:        offerModel.TierSpecialOffer,
			TargetRooms: pq.StringArray{"villa"},
		},
	}

	require.NoError(t, repo.Save(ctx, cart))
	assert.True(t, server.Exists("cart:c-1"))
	assert.Equal(t, time.Hour, server.TTL("cart:c-1"))

	got, ok, err := repo.Get(ctx, "c-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Nights())
	require.Len(t, got.Rooms, 1)
	assert.True(t, decimal.NewFromInt(200).Equal(got.Rooms[0].NightlyRate))
	require.NotNil(t, got.Coupon)
	assert.Equal(t, offerModel.TierSpecialOffer, got.Coupon.Tier)
	assert.Equal(t, []string{"villa"}, []string(got.Coupon.TargetRooms))

	require.NoError(t, repo.Delete(ctx, "c-1"))

	_, ok, err = repo.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartRepository_Expired(t *testing.T) {
	repo, server := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.Cart{ID: "c-2"}))
	server.FastForward(2 * time.Hour)

	_, ok, err := repo.Get(ctx, "c-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
