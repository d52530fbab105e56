package model

import (
	"time"

	"hotel/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableSpecialOffers = "special_offers"
	TableDiscounts     = "discounts"
	EntityName         = "offer"

	FieldID             = "id"
	FieldCode           = "code"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldDiscountType   = "discount_type"
	FieldDiscountValue  = "discount_value"
	FieldPayNights      = "pay_nights"
	FieldStayNights     = "stay_nights"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldMinGuests      = "min_guests"
	FieldMaxGuests      = "max_guests"
	FieldTargetAudience = "target_audience"
	FieldTargetRooms    = "target_rooms"
	FieldActive         = "active"
)

// Tier is which of the two coupon tables an offer lives in. Special offers win over discounts on a code clash.
type Tier string

const (
	TierSpecialOffer Tier = "special_offer"
	TierDiscount     Tier = "discount"
)

// Tiers is the lookup order.
var Tiers = []Tier{TierSpecialOffer, TierDiscount}

func (t Tier) Valid() bool {
	return t == TierSpecialOffer || t == TierDiscount
}

func (t Tier) TableName() string {
	if t == TierDiscount {
		return TableDiscounts
	}

	return TableSpecialOffers
}

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
	DiscountPayXStayY  = "pay_x_stay_y"
)

const (
	AudienceAllRooms      = "all_rooms"
	AudienceSpecificRooms = "specific_rooms"
)

type Offer struct {
	ID             string          `db:"id"`
	Code           string          `db:"code"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	DiscountType   string          `db:"discount_type"`
	DiscountValue  decimal.Decimal `db:"discount_value"`
	PayNights      int             `db:"pay_nights"`
	StayNights     int             `db:"stay_nights"`
	StartDate      *time.Time      `db:"start_date"`
	EndDate        *time.Time      `db:"end_date"`
	MinGuests      *int            `db:"min_guests"`
	MaxGuests      *int            `db:"max_guests"`
	TargetAudience string          `db:"target_audience"`
	TargetRooms    pq.StringArray  `db:"target_rooms"`
	Active         bool            `db:"active"`
	model.Metadata

	Tier Tier
}
