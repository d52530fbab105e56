package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/offer/engine"
	offerMocks "hotel/internal/domains/offer/mocks"
	"hotel/internal/domains/offer/model"
	"hotel/internal/domains/offer/model/dto"
	"hotel/internal/domains/offer/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Offer, *offerMocks.MockOffer, *cacheMocks.MockRedisCache, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := offerMocks.NewMockOffer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Metrics.Namespace = "test"

	m := metrics.New(cfg)

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), m), mockRepo, mockCache, m
}

func TestOfferService_Evaluate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	lastWeek := now.AddDate(0, 0, -7)

	evalCtx := engine.Context{
		Now:    now,
		Guests: 2,
		Nights: 7,
		Rooms:  []engine.RoomLine{{Name: "Room 7", Category: "Standard", Subtotal: decimal.NewFromInt(700)}},
	}

	tests := []struct {
		name         string
		setupMock    func(repo *offerMocks.MockOffer)
		wantErr      bool
		wantApplied  bool
		wantReason   string
		wantDiscount string
		wantResult   string
	}{
		{
			name: "pay five stay seven",
			setupMock: func(repo *offerMocks.MockOffer) {
				repo.EXPECT().FindByCode(gomock.Any(), "stay7").Return(model.Offer{
					ID:             "o-1",
					Code:           "STAY7",
					Tier:           model.TierSpecialOffer,
					Active:         true,
					DiscountType:   model.DiscountPayXStayY,
					PayNights:      5,
					StayNights:     7,
					TargetAudience: model.AudienceAllRooms,
				}, nil)
			},
			wantApplied:  true,
			wantDiscount: "200",
			wantResult:   metrics.ResultSuccess,
		},
		{
			name: "unknown code",
			setupMock: func(repo *offerMocks.MockOffer) {
				repo.EXPECT().FindByCode(gomock.Any(), "stay7").Return(model.Offer{}, nil)
			},
			wantReason:   engine.ReasonInvalidCode,
			wantDiscount: "0",
			wantResult:   metrics.ResultRejected,
		},
		{
			name: "expired code",
			setupMock: func(repo *offerMocks.MockOffer) {
				repo.EXPECT().FindByCode(gomock.Any(), "stay7").Return(model.Offer{
					ID:            "o-2",
					Code:          "STAY7",
					Active:        true,
					EndDate:       &lastWeek,
					DiscountType:  model.DiscountFixed,
					DiscountValue: decimal.NewFromInt(50),
				}, nil)
			},
			wantReason:   engine.ReasonExpired,
			wantDiscount: "0",
			wantResult:   metrics.ResultRejected,
		},
		{
			name: "lookup failure",
			setupMock: func(repo *offerMocks.MockOffer) {
				repo.EXPECT().FindByCode(gomock.Any(), "stay7").Return(model.Offer{}, errors.New("connection refused"))
			},
			wantErr:    true,
			wantResult: metrics.ResultError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, m := newService(t)
			tt.setupMock(repo)

			res, err := svc.Evaluate(context.Background(), "stay7", evalCtx)

			assert.Equal(t, float64(1), testutil.ToFloat64(m.CouponEvaluation.WithLabelValues(tt.wantResult)))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, res.Applied)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.True(t, decimal.RequireFromString(tt.wantDiscount).Equal(res.Discount), "discount %s", res.Discount)
		})
	}
}

func TestOfferService_Create(t *testing.T) {
	tests := []struct {
		name      string
		tier      model.Tier
		req       dto.CreateOfferRequest
		setupMock func(repo *offerMocks.MockOffer, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "creates a discount",
			tier: model.TierDiscount,
			req: dto.CreateOfferRequest{
				Code:          "SUMMER10",
				Title:         "Summer",
				DiscountType:  model.DiscountPercentage,
				DiscountValue: decimal.NewFromInt(10),
				EndDate:       "2025-08-31",
			},
			setupMock: func(repo *offerMocks.MockOffer, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "SUMMER10").Return(model.Offer{}, nil)
				repo.EXPECT().Insert(gomock.Any(), model.TierDiscount, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Tier, offer model.Offer) error {
						assert.Equal(t, model.AudienceAllRooms, offer.TargetAudience)
						assert.True(t, offer.Active)
						assert.Equal(t, 23, offer.EndDate.Hour())

						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "code already used by the other tier",
			tier: model.TierDiscount,
			req: dto.CreateOfferRequest{
				Code:          "VIP",
				Title:         "VIP",
				DiscountType:  model.DiscountFixed,
				DiscountValue: decimal.NewFromInt(20),
			},
			setupMock: func(repo *offerMocks.MockOffer, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().FindByCode(gomock.Any(), "VIP").Return(model.Offer{ID: "x", Code: "vip", Tier: model.TierSpecialOffer}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "pay not below stay",
			tier: model.TierSpecialOffer,
			req: dto.CreateOfferRequest{
				Code:         "BAD",
				Title:        "Bad",
				DiscountType: model.DiscountPayXStayY,
				PayNights:    7,
				StayNights:   7,
			},
			setupMock: func(_ *offerMocks.MockOffer, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "percentage above 100",
			tier: model.TierSpecialOffer,
			req: dto.CreateOfferRequest{
				Code:          "BAD",
				Title:         "Bad",
				DiscountType:  model.DiscountPercentage,
				DiscountValue: decimal.NewFromInt(120),
			},
			setupMock: func(_ *offerMocks.MockOffer, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown tier",
			tier:      model.Tier("voucher"),
			req:       dto.CreateOfferRequest{Code: "X", Title: "X", DiscountType: model.DiscountFixed},
			setupMock: func(_ *offerMocks.MockOffer, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, tt.tier, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestOfferService_Get_NotFound(t *testing.T) {
	svc, repo, cache, _ := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), model.TierSpecialOffer, gomock.Any()).Return(model.Offer{}, nil)

	_, err := svc.Get(context.Background(), model.TierSpecialOffer, "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestOfferService_Update_RejectsInvalidMerge(t *testing.T) {
	svc, repo, _, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), model.TierDiscount, gomock.Any()).Return(model.Offer{
		ID:           "o-1",
		DiscountType: model.DiscountPayXStayY,
		PayNights:    2,
		StayNights:   3,
	}, nil)

	pay := 4
	err := svc.Update(context.Background(), model.TierDiscount, dto.UpdateOfferRequest{PayNights: &pay}, "o-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestOfferService_Update_ChecksMergedWindow(t *testing.T) {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		req      dto.UpdateOfferRequest
		wantCode int
	}{
		{
			name:     "end date alone moved before the stored start",
			req:      dto.UpdateOfferRequest{EndDate: "2026-06-01"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "start date alone moved past the stored end",
			req:      dto.UpdateOfferRequest{StartDate: "2026-07-05"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unparseable end date",
			req:      dto.UpdateOfferRequest{EndDate: "30/06/2026"},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "single-day window",
			req:  dto.UpdateOfferRequest{EndDate: "2026-06-10"},
		},
		{
			name: "window extended",
			req:  dto.UpdateOfferRequest{EndDate: "2026-07-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)

			repo.EXPECT().Get(gomock.Any(), model.TierSpecialOffer, gomock.Any()).Return(model.Offer{
				ID:            "o-1",
				DiscountType:  model.DiscountPercentage,
				DiscountValue: decimal.NewFromInt(15),
				StartDate:     &start,
				EndDate:       &end,
			}, nil)

			if tt.wantCode == 0 {
				repo.EXPECT().Update(gomock.Any(), model.TierSpecialOffer, gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			err := svc.Update(context.Background(), model.TierSpecialOffer, tt.req, "o-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
