package model

import (
	"slices"
	"time"

	addonModel "hotel/internal/domains/addon/model"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/offer/engine"
	offerModel "hotel/internal/domains/offer/model"
	"hotel/shared/money"

	"github.com/shopspring/decimal"
)

const KeyPrefix = "cart"

type RoomLine struct {
	LineID      string          `json:"line_id"`
	RoomID      string          `json:"room_id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

type AddonLine struct {
	AddonID     string          `json:"addon_id"`
	Name        string          `json:"name"`
	PricingType string          `json:"pricing_type"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Cart is a guest's unsubmitted stay, kept in redis.
type Cart struct {
	ID        string            `json:"id"`
	CheckIn   *time.Time        `json:"check_in,omitempty"`
	CheckOut  *time.Time        `json:"check_out,omitempty"`
	Guests    int               `json:"guests"`
	Rooms     []RoomLine        `json:"rooms"`
	Addons    []AddonLine       `json:"addons"`
	Coupon    *offerModel.Offer `json:"coupon,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (c *Cart) Nights() int {
	if c.CheckIn == nil || c.CheckOut == nil {
		return 1
	}

	return bookingModel.Nights(*c.CheckIn, *c.CheckOut)
}

func (c *Cart) GuestCount() int {
	return max(c.Guests, 1)
}

func (c *Cart) RemoveRoom(lineID string) bool {
	before := len(c.Rooms)
	c.Rooms = slices.DeleteFunc(c.Rooms, func(line RoomLine) bool { return line.LineID == lineID })

	return len(c.Rooms) != before
}

// AddAddon increments the quantity when the add-on is already in the cart.
func (c *Cart) AddAddon(line AddonLine) {
	line.Quantity = max(line.Quantity, 1)

	for i := range c.Addons {
		if c.Addons[i].AddonID == line.AddonID {
			c.Addons[i].Quantity += line.Quantity

			return
		}
	}

	c.Addons = append(c.Addons, line)
}

func (c *Cart) RemoveAddon(addonID string) bool {
	before := len(c.Addons)
	c.Addons = slices.DeleteFunc(c.Addons, func(line AddonLine) bool { return line.AddonID == addonID })

	return len(c.Addons) != before
}

// SetAddonQuantity removes the line for quantities below one.
func (c *Cart) SetAddonQuantity(addonID string, quantity int) bool {
	if quantity < 1 {
		return c.RemoveAddon(addonID)
	}

	for i := range c.Addons {
		if c.Addons[i].AddonID == addonID {
			c.Addons[i].Quantity = quantity

			return true
		}
	}

	return false
}

// CouponContext is what the offer engine sees of this cart.
func (c *Cart) CouponContext(now time.Time) engine.Context {
	nights := decimal.NewFromInt(int64(c.Nights()))
	ctx := engine.Context{
		Now:    now,
		Guests: c.GuestCount(),
		Nights: c.Nights(),
		Rooms:  make([]engine.RoomLine, len(c.Rooms)),
	}

	for i, room := range c.Rooms {
		ctx.Rooms[i] = engine.RoomLine{
			Name:     room.Name,
			Category: room.Category,
			Subtotal: room.NightlyRate.Mul(nights),
		}
	}

	return ctx
}

// CouponExpired reports whether the applied coupon's end date has passed.
func (c *Cart) CouponExpired(now time.Time) bool {
	return c.Coupon != nil && c.Coupon.EndDate != nil && now.After(*c.Coupon.EndDate)
}

type Summary struct {
	Nights       int
	RoomSubtotal decimal.Decimal
	AddonTotal   decimal.Decimal
	BaseTotal    decimal.Decimal
	Discount     decimal.Decimal
	Taxes        decimal.Decimal
	Total        decimal.Decimal
	CouponReason string
}

// Summarize prices the cart. A cart without rooms is worth nothing, whatever add-ons it holds.
func Summarize(c *Cart, now time.Time) Summary {
	s := Summary{
		Nights:       c.Nights(),
		RoomSubtotal: decimal.Zero,
		AddonTotal:   decimal.Zero,
		BaseTotal:    decimal.Zero,
		Discount:     decimal.Zero,
		Taxes:        decimal.Zero,
		Total:        decimal.Zero,
	}

	if len(c.Rooms) == 0 {
		return s
	}

	nights := decimal.NewFromInt(int64(s.Nights))

	for _, room := range c.Rooms {
		s.RoomSubtotal = s.RoomSubtotal.Add(room.NightlyRate.Mul(nights))
		s.Taxes = s.Taxes.Add(room.TaxRate.Mul(nights))
	}

	for _, addon := range c.Addons {
		s.AddonTotal = s.AddonTotal.Add(addonModel.LineTotal(addon.Price, addon.PricingType, addon.Quantity, s.Nights, c.GuestCount()))
	}

	s.BaseTotal = s.RoomSubtotal.Add(s.AddonTotal)

	if c.Coupon != nil {
		result := engine.Evaluate(*c.Coupon, c.CouponContext(now))
		s.Discount = result.Discount
		s.CouponReason = result.Reason
	}

	s.Taxes = money.Round(s.Taxes)
	s.Total = money.Round(money.NonNegative(s.BaseTotal.Sub(s.Discount)).Add(s.Taxes))

	return s
}
