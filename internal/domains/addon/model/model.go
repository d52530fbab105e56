package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldPricingType = "pricing_type"
	FieldActive      = "active"
)

const (
	PricingPerStay  = "per_stay"
	PricingPerDay   = "per_day"
	PricingPerGuest = "per_guest"
)

type Addon struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	PricingType string          `db:"pricing_type"`
	Active      bool            `db:"active"`
	model.Metadata
}

// Multiplier is how many times the unit price applies for a stay.
func Multiplier(pricingType string, nights, guests int) int64 {
	switch pricingType {
	case PricingPerDay:
		return int64(max(nights, 1))
	case PricingPerGuest:
		return int64(max(guests, 1))
	default:
		return 1
	}
}

// LineTotal is price × multiplier × quantity.
func LineTotal(price decimal.Decimal, pricingType string, quantity, nights, guests int) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(Multiplier(pricingType, nights, guests))).
		Mul(decimal.NewFromInt(int64(quantity)))
}
