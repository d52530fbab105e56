package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	addonMocks "hotel/internal/domains/addon/mocks"
	"hotel/internal/domains/addon/model"
	"hotel/internal/domains/addon/model/dto"
	"hotel/internal/domains/addon/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Addon
	repo  *addonMocks.MockAddon
	cache *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  addonMocks.NewMockAddon(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestAddonService_Create(t *testing.T) {
	inactive := false

	tests := []struct {
		name       string
		req        dto.CreateAddonRequest
		insertErr  error
		wantActive bool
		wantErr    bool
	}{
		{
			name:       "active by default",
			req:        dto.CreateAddonRequest{Name: "Breakfast", Price: decimal.NewFromInt(15), PricingType: model.PricingPerGuest},
			wantActive: true,
		},
		{
			name: "explicitly inactive",
			req:  dto.CreateAddonRequest{Name: "Airport pickup", Price: decimal.NewFromInt(40), PricingType: model.PricingPerStay, Active: &inactive},
		},
		{
			name:      "repository error",
			req:       dto.CreateAddonRequest{Name: "Spa", PricingType: model.PricingPerStay},
			insertErr: errors.New("database error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, addon model.Addon) error {
				assert.NotEmpty(t, addon.ID)
				assert.Equal(t, tt.req.Name, addon.Name)
				assert.Equal(t, tt.wantActive, addon.Active)

				return tt.insertErr
			})

			err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAddonService_Get(t *testing.T) {
	t.Run("served from cache", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, target any) error {
			target.(*dto.AddonResponse).Name = "Breakfast"

			return nil
		})

		res, err := f.svc.Get(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, "Breakfast", res.Name)
	})

	t.Run("loaded from the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Addon{
			ID:          "a-1",
			Name:        "Late checkout",
			Price:       decimal.NewFromInt(25),
			PricingType: model.PricingPerStay,
			Active:      true,
		}, nil)

		res, err := f.svc.Get(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, "a-1", res.ID)
		assert.True(t, res.Price.Equal(decimal.NewFromInt(25)))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Addon{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAddonService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 2}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Addon{
		{ID: "a-1", Name: "Breakfast"},
		{ID: "a-2", Name: "Dinner"},
	}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Addons, 2)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestAddonService_UpdateAndDelete(t *testing.T) {
	tests := []struct {
		name     string
		exist    bool
		existErr error
		call     func(svc service.Addon) error
		mutate   func(f fixture)
		wantCode int
	}{
		{
			name:  "update",
			exist: true,
			call: func(svc service.Addon) error {
				return svc.Update(context.Background(), dto.UpdateAddonRequest{Name: "Full breakfast"}, "a-1")
			},
			mutate: func(f fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "update missing",
			call: func(svc service.Addon) error {
				return svc.Update(context.Background(), dto.UpdateAddonRequest{Name: "x"}, "nope")
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:  "delete",
			exist: true,
			call: func(svc service.Addon) error {
				return svc.Delete(context.Background(), "a-1")
			},
			mutate: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "existence check fails",
			existErr: errors.New("database error"),
			call: func(svc service.Addon) error {
				return svc.Delete(context.Background(), "a-1")
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exist, tt.existErr)

			if tt.mutate != nil {
				tt.mutate(f)
			}

			err := tt.call(f.svc)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
