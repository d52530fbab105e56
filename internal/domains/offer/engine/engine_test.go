package engine_test

import (
	"testing"
	"time"

	"hotel/internal/domains/offer/engine"
	"hotel/internal/domains/offer/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCheck(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		offer model.Offer
		ctx   engine.Context
		want  string
	}{
		{
			name:  "active without bounds",
			offer: model.Offer{Active: true},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  "",
		},
		{
			name:  "inactive",
			offer: model.Offer{Active: false},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  engine.ReasonInactive,
		},
		{
			name:  "expired",
			offer: model.Offer{Active: true, EndDate: &yesterday},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  engine.ReasonExpired,
		},
		{
			name:  "not started",
			offer: model.Offer{Active: true, StartDate: &tomorrow},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  engine.ReasonNotStarted,
		},
		{
			name:  "inside window",
			offer: model.Offer{Active: true, StartDate: &yesterday, EndDate: &tomorrow},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  "",
		},
		{
			name:  "too few guests",
			offer: model.Offer{Active: true, MinGuests: ptr(3)},
			ctx:   engine.Context{Now: now, Guests: 2},
			want:  engine.ReasonGuestCount,
		},
		{
			name:  "too many guests",
			offer: model.Offer{Active: true, MaxGuests: ptr(4)},
			ctx:   engine.Context{Now: now, Guests: 5},
			want:  engine.ReasonGuestCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Check(tt.offer, tt.ctx))
		})
	}
}

func TestBase_SpecificRooms(t *testing.T) {
	rooms := []engine.RoomLine{
		{Name: "Garden Villa", Category: "Villa", Subtotal: dec("900")},
		{Name: "Room 204", Category: "Deluxe Ocean View", Subtotal: dec("300")},
	}

	offer := model.Offer{TargetAudience: model.AudienceSpecificRooms, TargetRooms: []string{"ocean"}}
	assert.True(t, dec("300").Equal(engine.Base(offer, rooms)))

	offer.TargetRooms = []string{"VILLA", "ocean view"}
	assert.True(t, dec("1200").Equal(engine.Base(offer, rooms)))

	offer.TargetRooms = []string{"penthouse"}
	assert.True(t, engine.Base(offer, rooms).IsZero())

	offer.TargetAudience = model.AudienceAllRooms
	assert.True(t, dec("1200").Equal(engine.Base(offer, rooms)))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		offer  model.Offer
		base   string
		nights int
		want   string
	}{
		{name: "percentage", offer: model.Offer{DiscountType: model.DiscountPercentage, DiscountValue: dec("15")}, base: "400", nights: 2, want: "60"},
		{name: "fixed below base", offer: model.Offer{DiscountType: model.DiscountFixed, DiscountValue: dec("50")}, base: "400", nights: 2, want: "50"},
		{name: "fixed capped at base", offer: model.Offer{DiscountType: model.DiscountFixed, DiscountValue: dec("500")}, base: "400", nights: 2, want: "400"},
		{name: "pay 5 stay 7 on seven nights", offer: model.Offer{DiscountType: model.DiscountPayXStayY, PayNights: 5, StayNights: 7}, base: "700", nights: 7, want: "200"},
		{name: "pay 5 stay 7 on fourteen nights", offer: model.Offer{DiscountType: model.DiscountPayXStayY, PayNights: 5, StayNights: 7}, base: "1400", nights: 14, want: "400"},
		{name: "pay 5 stay 7 on ten nights counts one block", offer: model.Offer{DiscountType: model.DiscountPayXStayY, PayNights: 5, StayNights: 7}, base: "1000", nights: 10, want: "200"},
		{name: "pay 5 stay 7 on short stay", offer: model.Offer{DiscountType: model.DiscountPayXStayY, PayNights: 5, StayNights: 7}, base: "600", nights: 6, want: "0"},
		{name: "pay 3 stay 3 is no discount", offer: model.Offer{DiscountType: model.DiscountPayXStayY, PayNights: 3, StayNights: 3}, base: "300", nights: 3, want: "0"},
		{name: "zero base", offer: model.Offer{DiscountType: model.DiscountPercentage, DiscountValue: dec("20")}, base: "0", nights: 3, want: "0"},
		{name: "unknown type", offer: model.Offer{DiscountType: "bogo", DiscountValue: dec("20")}, base: "100", nights: 1, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Amount(tt.offer, dec(tt.base), tt.nights)
			assert.True(t, dec(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("pay x stay y room charge", func(t *testing.T) {
		offer := model.Offer{
			Active:         true,
			DiscountType:   model.DiscountPayXStayY,
			PayNights:      5,
			StayNights:     7,
			TargetAudience: model.AudienceAllRooms,
		}

		ctx := engine.Context{
			Now:    now,
			Guests: 2,
			Nights: 7,
			Rooms:  []engine.RoomLine{{Name: "Room 101", Category: "Standard", Subtotal: dec("700")}},
		}

		res := engine.Evaluate(offer, ctx)

		assert.True(t, res.Applied)
		assert.True(t, dec("200").Equal(res.Discount))
		assert.True(t, dec("500").Equal(ctx.RoomSubtotal().Sub(res.Discount)))
	})

	t.Run("expired coupon is rejected with zero discount", func(t *testing.T) {
		end := now.Add(-time.Minute)
		offer := model.Offer{Active: true, EndDate: &end, DiscountType: model.DiscountFixed, DiscountValue: dec("10")}

		res := engine.Evaluate(offer, engine.Context{Now: now, Rooms: []engine.RoomLine{{Subtotal: dec("100")}}})

		assert.False(t, res.Applied)
		assert.Equal(t, engine.ReasonExpired, res.Reason)
		assert.True(t, res.Discount.IsZero())
	})

	t.Run("specific rooms without a match", func(t *testing.T) {
		offer := model.Offer{
			Active:         true,
			DiscountType:   model.DiscountPercentage,
			DiscountValue:  dec("50"),
			TargetAudience: model.AudienceSpecificRooms,
			TargetRooms:    []string{"villa"},
		}

		res := engine.Evaluate(offer, engine.Context{
			Now:    now,
			Nights: 2,
			Rooms:  []engine.RoomLine{{Name: "Room 12", Category: "Standard", Subtotal: dec("200")}},
		})

		assert.True(t, res.Applied)
		assert.True(t, res.Discount.IsZero())
	})
}
