package dto

import (
	"encoding/json"
	"fmt"

	"hotel/internal/domains/billing/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type GenerateBillResponse struct {
	BillID        string          `json:"bill_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus string          `json:"payment_status"`
}

type BillResponse struct {
	ID             string             `json:"id"`
	BookingID      string             `json:"booking_id"`
	Currency       string             `json:"currency"`
	RoomCharges    []model.RoomCharge `json:"room_charges"`
	FoodCharges    []model.ChargeLine `json:"food_charges"`
	ServiceCharges []model.ChargeLine `json:"service_charges"`
	AddonCharges   []model.ChargeLine `json:"addon_charges"`
	RoomTotal      decimal.Decimal    `json:"room_total"`
	FoodTotal      decimal.Decimal    `json:"food_total"`
	ServiceTotal   decimal.Decimal    `json:"service_total"`
	AddonTotal     decimal.Decimal    `json:"addon_total"`
	TaxTotal       decimal.Decimal    `json:"tax_total"`
	Discount       decimal.Decimal    `json:"discount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	PaidAmount     decimal.Decimal    `json:"paid_amount"`
	Balance        decimal.Decimal    `json:"balance"`
	PaymentStatus  string             `json:"payment_status"`
	GeneratedAt    string             `json:"generated_at"`
}

func decode[T any](raw []byte, into *[]T) error {
	*into = []T{}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("failed to decode bill lines: %w", err)
	}

	return nil
}

func (r *BillResponse) FromModel(bill model.Bill, currency string) error {
	r.ID = bill.ID
	r.BookingID = bill.BookingID
	r.Currency = currency
	r.RoomTotal = bill.RoomTotal
	r.FoodTotal = bill.FoodTotal
	r.ServiceTotal = bill.ServiceTotal
	r.AddonTotal = bill.AddonTotal
	r.TaxTotal = bill.TaxTotal
	r.Discount = bill.Discount
	r.TotalAmount = bill.TotalAmount
	r.PaidAmount = bill.PaidAmount
	r.Balance = bill.Balance
	r.PaymentStatus = bill.PaymentStatus
	r.GeneratedAt = timezone.Format(bill.GeneratedAt, constant.DateFormat)

	if err := decode(bill.RoomCharges, &r.RoomCharges); err != nil {
		return err
	}

	if err := decode(bill.FoodCharges, &r.FoodCharges); err != nil {
		return err
	}

	if err := decode(bill.ServiceCharges, &r.ServiceCharges); err != nil {
		return err
	}

	return decode(bill.AddonCharges, &r.AddonCharges)
}
