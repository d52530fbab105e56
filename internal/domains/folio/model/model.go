package model

import (
	"hotel/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TableFoodOrders    = "food_orders"
	TableGuestServices = "guest_services"
	TableAddons        = "booking_addons"
	TableTransactions  = "folio_transactions"

	EntityFoodOrder    = "food_order"
	EntityGuestService = "guest_service"
	EntityAddon        = "booking_addon"
	EntityTransaction  = "folio_transaction"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldStatus    = "status"
)

const (
	StatusPending   = "pending"
	StatusServed    = "served"
	StatusCancelled = "cancelled"
)

const (
	TransactionPayment = "payment"
	TransactionRefund  = "refund"
)

// Kinds of charge that can be cancelled after posting.
const (
	KindFoodOrder    = "food-orders"
	KindGuestService = "guest-services"
)

type FoodOrder struct {
	ID          string          `db:"id"`
	BookingID   string          `db:"booking_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	model.Metadata
}

func (o FoodOrder) Billable() bool {
	return o.Status != StatusCancelled
}

type GuestService struct {
	ID          string          `db:"id"`
	BookingID   string          `db:"booking_id"`
	ServiceName string          `db:"service_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Status      string          `db:"status"`
	model.Metadata
}

func (s GuestService) Billable() bool {
	return s.Status != StatusCancelled
}

func (s GuestService) Amount() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// BookingAddon is an add-on line copied onto a booking, priced at the time it was added.
type BookingAddon struct {
	ID          string          `db:"id"`
	BookingID   string          `db:"booking_id"`
	AddonID     string          `db:"addon_id"`
	Name        string          `db:"name"`
	PricingType string          `db:"pricing_type"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	model.Metadata
}

type Transaction struct {
	ID        string          `db:"id"`
	BookingID string          `db:"booking_id"`
	Type      string          `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	Reference string          `db:"reference"`
	model.Metadata
}

// Signed is positive for payments and negative for refunds.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionRefund {
		return t.Amount.Neg()
	}

	return t.Amount
}

// Postings is everything charged or paid against one booking.
type Postings struct {
	FoodOrders    []FoodOrder
	GuestServices []GuestService
	Addons        []BookingAddon
	Transactions  []Transaction
}

// Paid nets payments against refunds.
func (p Postings) Paid() decimal.Decimal {
	paid := decimal.Zero
	for _, t := range p.Transactions {
		paid = paid.Add(t.Signed())
	}

	return paid
}

func NewAddonLine(bookingID, addonID, name, pricingType string, price decimal.Decimal, quantity int, meta model.Metadata) BookingAddon {
	return BookingAddon{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		AddonID:     addonID,
		Name:        name,
		PricingType: pricingType,
		UnitPrice:   price,
		Quantity:    max(quantity, 1),
		Metadata:    meta,
	}
}
