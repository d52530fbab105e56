package model_test

import (
	"testing"
	"time"

	addonModel "hotel/internal/domains/addon/model"
	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/offer/engine"
	offerModel "hotel/internal/domains/offer/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

func stay(nights int) (*time.Time, *time.Time) {
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, nights)

	return &checkIn, &checkOut
}

func deluxe() model.RoomLine {
	return model.RoomLine{
		LineID:      "l-1",
		RoomID:      "r-1",
		Name:        "Deluxe 204",
		Category:    "deluxe",
		NightlyRate: decimal.NewFromInt(100),
		TaxRate:     decimal.NewFromInt(10),
	}
}

func breakfast() model.AddonLine {
	return model.AddonLine{
		AddonID:     "a-1",
		Name:        "Breakfast",
		PricingType: addonModel.PricingPerGuest,
		Price:       decimal.NewFromInt(20),
		Quantity:    1,
	}
}

func TestSummarize(t *testing.T) {
	checkIn, checkOut := stay(2)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name         string
		cart         model.Cart
		wantBase     string
		wantDiscount string
		wantTaxes    string
		wantTotal    string
		wantReason   string
	}{
		{
			name:         "no rooms totals zero with add-ons and no dates",
			cart:         model.Cart{Guests: 2, Addons: []model.AddonLine{breakfast()}},
			wantBase:     "0",
			wantDiscount: "0",
			wantTaxes:    "0",
			wantTotal:    "0",
		},
		{
			name: "room and per-guest add-on",
			cart: model.Cart{
				CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
				Rooms:  []model.RoomLine{deluxe()},
				Addons: []model.AddonLine{breakfast()},
			},
			wantBase:     "240",
			wantDiscount: "0",
			wantTaxes:    "20",
			wantTotal:    "260",
		},
		{
			name: "missing dates fall back to one night",
			cart: model.Cart{
				Guests: 1,
				Rooms:  []model.RoomLine{deluxe()},
			},
			wantBase:     "100",
			wantDiscount: "0",
			wantTaxes:    "10",
			wantTotal:    "110",
		},
		{
			name: "percentage coupon only discounts rooms",
			cart: model.Cart{
				CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
				Rooms:  []model.RoomLine{deluxe()},
				Addons: []model.AddonLine{breakfast()},
				Coupon: &offerModel.Offer{
					Code:          "SAVE10",
					Active:        true,
					DiscountType:  offerModel.DiscountPercentage,
					DiscountValue: decimal.NewFromInt(10),
				},
			},
			wantBase:     "240",
			wantDiscount: "20",
			wantTaxes:    "20",
			wantTotal:    "240",
		},
		{
			name: "specific-room coupon without a matching room",
			cart: model.Cart{
				CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
				Rooms: []model.RoomLine{deluxe()},
				Coupon: &offerModel.Offer{
					Code:           "VILLA50",
					Active:         true,
					DiscountType:   offerModel.DiscountFixed,
					DiscountValue:  decimal.NewFromInt(50),
					TargetAudience: offerModel.AudienceSpecificRooms,
					TargetRooms:    pq.StringArray{"villa"},
				},
			},
			wantBase:     "200",
			wantDiscount: "0",
			wantTaxes:    "20",
			wantTotal:    "220",
		},
		{
			name: "fixed discount never pushes the total below taxes",
			cart: model.Cart{
				CheckIn: checkIn, CheckOut: checkOut, Guests: 1,
				Rooms: []model.RoomLine{deluxe()},
				Coupon: &offerModel.Offer{
					Code:          "BIG",
					Active:        true,
					DiscountType:  offerModel.DiscountFixed,
					DiscountValue: decimal.NewFromInt(1000),
				},
			},
			wantBase:     "200",
			wantDiscount: "200",
			wantTaxes:    "20",
			wantTotal:    "20",
		},
		{
			name: "expired coupon carries its reason",
			cart: model.Cart{
				CheckIn: checkIn, CheckOut: checkOut, Guests: 1,
				Rooms: []model.RoomLine{deluxe()},
				Coupon: &offerModel.Offer{
					Code:          "OLD",
					Active:        true,
					DiscountType:  offerModel.DiscountPercentage,
					DiscountValue: decimal.NewFromInt(10),
					EndDate:       &yesterday,
				},
			},
			wantBase:     "200",
			wantDiscount: "0",
			wantTaxes:    "20",
			wantTotal:    "220",
			wantReason:   engine.ReasonExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Summarize(&tt.cart, now)

			assert.Equal(t, tt.wantBase, got.BaseTotal.String())
			assert.Equal(t, tt.wantDiscount, got.Discount.String())
			assert.Equal(t, tt.wantTaxes, got.Taxes.String())
			assert.Equal(t, tt.wantTotal, got.Total.String())
			assert.Equal(t, tt.wantReason, got.CouponReason)
		})
	}
}

func TestCart_AddonLines(t *testing.T) {
	cart := model.Cart{}

	cart.AddAddon(model.AddonLine{AddonID: "a-1", Quantity: 0})
	cart.AddAddon(model.AddonLine{AddonID: "a-1", Quantity: 2})

	assert.Len(t, cart.Addons, 1)
	assert.Equal(t, 3, cart.Addons[0].Quantity)

	assert.True(t, cart.SetAddonQuantity("a-1", 5))
	assert.Equal(t, 5, cart.Addons[0].Quantity)

	assert.True(t, cart.SetAddonQuantity("a-1", 0))
	assert.Empty(t, cart.Addons)

	assert.False(t, cart.SetAddonQuantity("a-1", 2))
	assert.False(t, cart.RemoveAddon("a-1"))
}

func TestCart_RemoveRoom(t *testing.T) {
	cart := model.Cart{Rooms: []model.RoomLine{deluxe()}}

	assert.False(t, cart.RemoveRoom("other"))
	assert.True(t, cart.RemoveRoom("l-1"))
	assert.Empty(t, cart.Rooms)
}
