// Package engine decides whether a coupon applies to a stay and how much it takes off.
//
// Nothing here touches storage. Business mismatches come back as a Result with a reason, never as an error.
package engine

import (
	"strings"
	"time"

	"hotel/internal/domains/offer/model"
	"hotel/shared/money"

	"github.com/shopspring/decimal"
)

const (
	ReasonInvalidCode = "invalid code"
	ReasonInactive    = "coupon is inactive"
	ReasonExpired     = "coupon has expired"
	ReasonNotStarted  = "coupon is not yet valid"
	ReasonGuestCount  = "guest count not eligible"
)

// RoomLine is one room of the stay as the coupon sees it.
type RoomLine struct {
	Name     string
	Category string
	Subtotal decimal.Decimal
}

type Context struct {
	Now    time.Time
	Guests int
	Nights int
	Rooms  []RoomLine
}

func (c Context) RoomSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, room := range c.Rooms {
		total = total.Add(room.Subtotal)
	}

	return total
}

type Result struct {
	Applied  bool
	Reason   string
	Offer    model.Offer
	Base     decimal.Decimal
	Discount decimal.Decimal
}

// Rejected builds the result for a code that did not apply.
func Rejected(reason string) Result {
	return Result{Reason: reason, Base: decimal.Zero, Discount: decimal.Zero}
}

// Check returns the rejection reason for offer in ctx, or an empty string when it is applicable.
func Check(offer model.Offer, ctx Context) string {
	switch {
	case !offer.Active:
		return ReasonInactive
	case offer.StartDate != nil && ctx.Now.Before(*offer.StartDate):
		return ReasonNotStarted
	case offer.EndDate != nil && ctx.Now.After(*offer.EndDate):
		return ReasonExpired
	case offer.MinGuests != nil && ctx.Guests < *offer.MinGuests:
		return ReasonGuestCount
	case offer.MaxGuests != nil && ctx.Guests > *offer.MaxGuests:
		return ReasonGuestCount
	}

	return ""
}

// Base is the part of the room subtotal the offer may discount. Add-ons never enter it.
func Base(offer model.Offer, rooms []RoomLine) decimal.Decimal {
	if offer.TargetAudience != model.AudienceSpecificRooms {
		return Context{Rooms: rooms}.RoomSubtotal()
	}

	base := decimal.Zero

	for _, room := range rooms {
		if matchesTarget(room, offer.TargetRooms) {
			base = base.Add(room.Subtotal)
		}
	}

	return base
}

func matchesTarget(room RoomLine, targets []string) bool {
	name := strings.ToLower(room.Name)
	category := strings.ToLower(room.Category)

	for _, target := range targets {
		target = strings.ToLower(strings.TrimSpace(target))
		if target == "" {
			continue
		}

		if strings.Contains(name, target) || strings.Contains(category, target) {
			return true
		}
	}

	return false
}

// Amount computes the discount for base over a stay of nights. The result never exceeds base.
func Amount(offer model.Offer, base decimal.Decimal, nights int) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	var discount decimal.Decimal

	switch offer.DiscountType {
	case model.DiscountPercentage:
		discount = money.Percent(base, offer.DiscountValue)
	case model.DiscountFixed:
		discount = decimal.Min(offer.DiscountValue, base)
	case model.DiscountPayXStayY:
		discount = payXStayY(base, offer.PayNights, offer.StayNights, nights)
	default:
		discount = decimal.Zero
	}

	return money.Round(decimal.Min(money.NonNegative(discount), base))
}

// payXStayY frees (stay - pay) nights for every complete block of stay nights.
func payXStayY(base decimal.Decimal, pay, stay, nights int) decimal.Decimal {
	if stay <= 0 || pay < 0 || pay >= stay || nights < stay {
		return decimal.Zero
	}

	groups := nights / stay
	freeNights := groups * (stay - pay)

	return base.Mul(decimal.NewFromInt(int64(freeNights))).Div(decimal.NewFromInt(int64(nights)))
}

// Evaluate runs the full predicate and amount computation for a looked-up offer.
func Evaluate(offer model.Offer, ctx Context) Result {
	if reason := Check(offer, ctx); reason != "" {
		res := Rejected(reason)
		res.Offer = offer

		return res
	}

	base := Base(offer, ctx.Rooms)

	return Result{
		Applied:  true,
		Offer:    offer,
		Base:     base,
		Discount: Amount(offer, base, ctx.Nights),
	}
}
