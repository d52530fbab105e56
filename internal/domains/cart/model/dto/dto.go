package dto

import (
	"time"

	"hotel/internal/domains/cart/model"

	"github.com/shopspring/decimal"
)

type AddRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type AddAddonRequest struct {
	AddonID  string `json:"addon_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetStayRequest struct {
	CheckIn  time.Time `json:"check_in"  validate:"required"`
	CheckOut time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	Guests   int       `json:"guests"    validate:"gte=1,lte=50"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

type CheckoutRequest struct {
	GuestName     string  `json:"guest_name"      validate:"required,max=100"`
	GuestEmail    string  `json:"guest_email"     validate:"required,email,max=100"`
	GuestPhone    string  `json:"guest_phone"     validate:"omitempty,max=20"`
	CompanyID     *string `json:"company_id"      validate:"omitempty"`
	TravelAgentID *string `json:"travel_agent_id" validate:"omitempty"`
}

type CouponResponse struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Reason string `json:"reason,omitempty"`
}

type CartResponse struct {
	ID           string            `json:"id"`
	CheckIn      *time.Time        `json:"check_in"`
	CheckOut     *time.Time        `json:"check_out"`
	Guests       int               `json:"guests"`
	Nights       int               `json:"nights"`
	Rooms        []model.RoomLine  `json:"rooms"`
	Addons       []model.AddonLine `json:"addons"`
	Coupon       *CouponResponse   `json:"coupon"`
	RoomSubtotal decimal.Decimal   `json:"room_subtotal"`
	AddonTotal   decimal.Decimal   `json:"addon_total"`
	BaseTotal    decimal.Decimal   `json:"base_total"`
	Discount     decimal.Decimal   `json:"discount"`
	Taxes        decimal.Decimal   `json:"taxes"`
	Total        decimal.Decimal   `json:"total"`
}

func (c *CartResponse) FromModel(cart model.Cart, summary model.Summary) {
	c.ID = cart.ID
	c.CheckIn = cart.CheckIn
	c.CheckOut = cart.CheckOut
	c.Guests = cart.Guests
	c.Nights = summary.Nights
	c.Rooms = cart.Rooms
	c.Addons = cart.Addons
	c.RoomSubtotal = summary.RoomSubtotal
	c.AddonTotal = summary.AddonTotal
	c.BaseTotal = summary.BaseTotal
	c.Discount = summary.Discount
	c.Taxes = summary.Taxes
	c.Total = summary.Total

	if c.Rooms == nil {
		c.Rooms = []model.RoomLine{}
	}

	if c.Addons == nil {
		c.Addons = []model.AddonLine{}
	}

	if cart.Coupon != nil {
		c.Coupon = &CouponResponse{
			Code:   cart.Coupon.Code,
			Title:  cart.Coupon.Title,
			Reason: summary.CouponReason,
		}
	}
}
