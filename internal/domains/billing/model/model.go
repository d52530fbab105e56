package model

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel/shared/model"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "checkout_bills"
	EntityName = "checkout_bill"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

type NightCharge struct {
	Date string          `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

type RoomCharge struct {
	RoomID string          `json:"room_id"`
	Name   string          `json:"name"`
	Nights []NightCharge   `json:"nights"`
	Tax    decimal.Decimal `json:"tax"`
	Total  decimal.Decimal `json:"total"`
}

type ChargeLine struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Statement is a fully itemised bill before it is stored.
type Statement struct {
	RoomCharges    []RoomCharge
	FoodCharges    []ChargeLine
	ServiceCharges []ChargeLine
	AddonCharges   []ChargeLine
	RoomTotal      decimal.Decimal
	FoodTotal      decimal.Decimal
	ServiceTotal   decimal.Decimal
	AddonTotal     decimal.Decimal
	TaxTotal       decimal.Decimal
	Discount       decimal.Decimal
	TotalAmount    decimal.Decimal
	PaidAmount     decimal.Decimal
	Balance        decimal.Decimal
	PaymentStatus  string
}

// Bill is the stored snapshot. Line items are kept as JSON documents.
type Bill struct {
	ID             string          `db:"id"`
	BookingID      string          `db:"booking_id"`
	RoomCharges    types.JSONText  `db:"room_charges"`
	FoodCharges    types.JSONText  `db:"food_charges"`
	ServiceCharges types.JSONText  `db:"service_charges"`
	AddonCharges   types.JSONText  `db:"addon_charges"`
	RoomTotal      decimal.Decimal `db:"room_total"`
	FoodTotal      decimal.Decimal `db:"food_total"`
	ServiceTotal   decimal.Decimal `db:"service_total"`
	AddonTotal     decimal.Decimal `db:"addon_total"`
	TaxTotal       decimal.Decimal `db:"tax_total"`
	Discount       decimal.Decimal `db:"discount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Balance        decimal.Decimal `db:"balance"`
	PaymentStatus  string          `db:"payment_status"`
	GeneratedAt    time.Time       `db:"generated_at"`
	model.Metadata
}

func encode(v any) (types.JSONText, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill lines: %w", err)
	}

	return types.JSONText(raw), nil
}

// ToModel stores the statement under the given bill id.
func (s Statement) ToModel(id, bookingID string, meta model.Metadata, now time.Time) (Bill, error) {
	bill := Bill{
		ID:            id,
		BookingID:     bookingID,
		RoomTotal:     s.RoomTotal,
		FoodTotal:     s.FoodTotal,
		ServiceTotal:  s.ServiceTotal,
		AddonTotal:    s.AddonTotal,
		TaxTotal:      s.TaxTotal,
		Discount:      s.Discount,
		TotalAmount:   s.TotalAmount,
		PaidAmount:    s.PaidAmount,
		Balance:       s.Balance,
		PaymentStatus: s.PaymentStatus,
		GeneratedAt:   now,
		Metadata:      meta,
	}

	var err error

	if bill.RoomCharges, err = encode(nonNil(s.RoomCharges)); err != nil {
		return bill, err
	}

	if bill.FoodCharges, err = encode(nonNil(s.FoodCharges)); err != nil {
		return bill, err
	}

	if bill.ServiceCharges, err = encode(nonNil(s.ServiceCharges)); err != nil {
		return bill, err
	}

	if bill.AddonCharges, err = encode(nonNil(s.AddonCharges)); err != nil {
		return bill, err
	}

	return bill, nil
}

func nonNil[T any](lines []T) []T {
	if lines == nil {
		return []T{}
	}

	return lines
}

// Fields lists the columns rewritten when a bill is regenerated.
func (b Bill) Fields() map[string]any {
	return map[string]any{
		"room_charges":    b.RoomCharges,
		"food_charges":    b.FoodCharges,
		"service_charges": b.ServiceCharges,
		"addon_charges":   b.AddonCharges,
		"room_total":      b.RoomTotal,
		"food_total":      b.FoodTotal,
		"service_total":   b.ServiceTotal,
		"addon_total":     b.AddonTotal,
		"tax_total":       b.TaxTotal,
		"discount":        b.Discount,
		"total_amount":    b.TotalAmount,
		"paid_amount":     b.PaidAmount,
		"balance":         b.Balance,
		"payment_status":  b.PaymentStatus,
		"generated_at":    b.GeneratedAt,
		"modified_at":     b.ModifiedAt,
		"modified_by":     b.ModifiedBy,
	}
}
