package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	addonMocks "hotel/internal/domains/addon/mocks"
	addonModel "hotel/internal/domains/addon/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	cartMocks "hotel/internal/domains/cart/mocks"
	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/cart/service"
	"hotel/internal/domains/offer/engine"
	offerModel "hotel/internal/domains/offer/model"
	offerMocks "hotel/internal/domains/offer/service/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Cart
	repo     *cartMocks.MockCart
	rooms    *roomMocks.MockRoom
	addons   *addonMocks.MockAddon
	offers   *offerMocks.MockOffer
	bookings *bookingMocks.MockBooking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     cartMocks.NewMockCart(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		addons:   addonMocks.NewMockAddon(ctrl),
		offers:   offerMocks.NewMockOffer(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.addons, f.offers, f.bookings, otelMocks.NewOtel())

	return f
}

func withRoom() model.Cart {
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	return model.Cart{
		ID:       "c-1",
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Guests:   2,
		Rooms: []model.RoomLine{
			{LineID: "l-1", RoomID: "r-1", Name: "Deluxe 204", Category: "deluxe", NightlyRate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(10)},
		},
	}
}

func TestCartService_Get(t *testing.T) {
	t.Run("missing cart", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(model.Cart{}, false, nil)

		_, err := f.svc.Get(context.Background(), "c-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("expired coupon is cleared on read", func(t *testing.T) {
		f := newFixture(t)
		ended := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		cart := withRoom()
		cart.Coupon = &offerModel.Offer{Code: "OLD", Active: true, EndDate: &ended}

		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(cart, true, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved model.Cart) error {
			assert.Nil(t, saved.Coupon)

			return nil
		})

		res, err := f.svc.Get(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Nil(t, res.Coupon)
		assert.Equal(t, "220", res.Total.String())
	})
}

func TestCartService_AddRoom(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "snapshots the room",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(model.Cart{ID: "c-1", Guests: 1}, true, nil)
				f.rooms.EXPECT().GetBookable(gomock.Any(), "r-9").Return(roomModel.Room{
					ID: "r-9", Name: "Garden Villa", Category: "villa", NightlyRate: decimal.NewFromInt(250), Active: true,
				}, nil)
				f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved model.Cart) error {
					require.Len(t, saved.Rooms, 1)
					assert.NotEmpty(t, saved.Rooms[0].LineID)
					assert.Equal(t, "r-9", saved.Rooms[0].RoomID)

					return nil
				})
			},
		},
		{
			name: "inactive room",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(model.Cart{ID: "c-1"}, true, nil)
				f.rooms.EXPECT().GetBookable(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(model.Cart{}, false, errors.New("redis down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.AddRoom(context.Background(), "c-1", dto.AddRoomRequest{RoomID: "r-9"})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "250", res.Total.String())
		})
	}
}

func TestCartService_AddAddon(t *testing.T) {
	f := newFixture(t)
	cart := model.Cart{ID: "c-1", Addons: []model.AddonLine{{AddonID: "a-1", Quantity: 1}}}

	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(cart, true, nil)
	f.addons.EXPECT().Get(gomock.Any(), gomock.Any()).Return(addonModel.Addon{
		ID: "a-1", Name: "Breakfast", PricingType: addonModel.PricingPerStay, Price: decimal.NewFromInt(15), Active: true,
	}, nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.AddAddon(context.Background(), "c-1", dto.AddAddonRequest{AddonID: "a-1", Quantity: 2})

	require.NoError(t, err)
	require.Len(t, res.Addons, 1)
	assert.Equal(t, 3, res.Addons[0].Quantity)
	assert.True(t, res.Total.IsZero())
}

func TestCartService_ApplyCoupon(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		f := newFixture(t)
		offer := offerModel.Offer{
			Code: "SAVE10", Active: true,
			DiscountType: offerModel.DiscountPercentage, DiscountValue: decimal.NewFromInt(10),
		}

		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(withRoom(), true, nil)
		f.offers.EXPECT().Evaluate(gomock.Any(), "SAVE10", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, evalCtx engine.Context) (engine.Result, error) {
				assert.Equal(t, 2, evalCtx.Nights)
				assert.True(t, decimal.NewFromInt(200).Equal(evalCtx.RoomSubtotal()))

				return engine.Evaluate(offer, evalCtx), nil
			})
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.ApplyCoupon(context.Background(), "c-1", dto.ApplyCouponRequest{Code: "SAVE10"})

		require.NoError(t, err)
		require.NotNil(t, res.Coupon)
		assert.Equal(t, "20", res.Discount.String())
		assert.Equal(t, "200", res.Total.String())
	})

	t.Run("rejected code clears the previous coupon", func(t *testing.T) {
		f := newFixture(t)
		cart := withRoom()
		cart.Coupon = &offerModel.Offer{Code: "SAVE10", Active: true}

		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(cart, true, nil)
		f.offers.EXPECT().Evaluate(gomock.Any(), "NOPE", gomock.Any()).Return(engine.Rejected(engine.ReasonInvalidCode), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved model.Cart) error {
			assert.Nil(t, saved.Coupon)

			return nil
		})

		_, err := f.svc.ApplyCoupon(context.Background(), "c-1", dto.ApplyCouponRequest{Code: "NOPE"})

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.EqualError(t, err, engine.ReasonInvalidCode)
	})
}

func TestCartService_Checkout(t *testing.T) {
	req := dto.CheckoutRequest{GuestName: "Ayu", GuestEmail: "ayu@example.com"}

	t.Run("submits and discards the cart", func(t *testing.T) {
		f := newFixture(t)
		cart := withRoom()
		cart.Addons = []model.AddonLine{{AddonID: "a-1", Name: "Breakfast", PricingType: addonModel.PricingPerGuest, Price: decimal.NewFromInt(20), Quantity: 1}}

		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(cart, true, nil)
		f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub bookingDto.Submission) (bookingDto.BookingResponse, error) {
				assert.Equal(t, "Ayu", sub.GuestName)
				assert.Equal(t, 2, sub.GuestCount)
				assert.Len(t, sub.Rooms, 1)
				assert.Len(t, sub.Addons, 1)
				assert.Nil(t, sub.CouponCode)
				assert.Equal(t, "260", sub.Total.String())

				return bookingDto.BookingResponse{ID: "b-1"}, nil
			})
		f.repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		res, err := f.svc.Checkout(context.Background(), "c-1", req)

		require.NoError(t, err)
		assert.Equal(t, "b-1", res.ID)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(model.Cart{ID: "c-1"}, true, nil)

		_, err := f.svc.Checkout(context.Background(), "c-1", req)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("submission failure keeps the cart", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(withRoom(), true, nil)
		f.bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(bookingDto.BookingResponse{}, errors.New("tx aborted"))

		_, err := f.svc.Checkout(context.Background(), "c-1", req)
		assert.Error(t, err)
	})
}
