package model

import (
	"math"
	"slices"
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	TableRooms  = "booking_rooms"
	EntityRooms = "booking_room"

	FieldID             = "id"
	FieldReference      = "reference"
	FieldGuestName      = "guest_name"
	FieldGuestEmail     = "guest_email"
	FieldGuestPhone     = "guest_phone"
	FieldStatus         = "status"
	FieldCompanyID      = "company_id"
	FieldTravelAgentID  = "travel_agent_id"
	FieldCheckoutBillID = "checkout_bill_id"
	FieldTotalAmount    = "total_amount"
	FieldPaidAmount     = "paid_amount"
	FieldCheckedInAt    = "checked_in_at"
	FieldCheckedOutAt   = "checked_out_at"
	FieldCheckoutNotes  = "checkout_notes"
	FieldArchived       = "archived"
	FieldBookingID      = "booking_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID             string          `db:"id"`
	Reference      string          `db:"reference"`
	GuestName      string          `db:"guest_name"`
	GuestEmail     string          `db:"guest_email"`
	GuestPhone     string          `db:"guest_phone"`
	GuestCount     int             `db:"guest_count"`
	CheckIn        time.Time       `db:"check_in"`
	CheckOut       time.Time       `db:"check_out"`
	Status         string          `db:"status"`
	CompanyID      *string         `db:"company_id"`
	TravelAgentID  *string         `db:"travel_agent_id"`
	CheckoutBillID *string         `db:"checkout_bill_id"`
	CouponCode     *string         `db:"coupon_code"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	CheckedInAt    *time.Time      `db:"checked_in_at"`
	CheckedOutAt   *time.Time      `db:"checked_out_at"`
	CheckoutNotes  string          `db:"checkout_notes"`
	Archived       bool            `db:"archived"`
	model.Metadata
}

// Room is the snapshot of a room taken when the booking was made.
type Room struct {
	ID          string          `db:"id"`
	BookingID   string          `db:"booking_id"`
	RoomID      string          `db:"room_id"`
	Name        string          `db:"name"`
	Kind        string          `db:"kind"`
	Category    string          `db:"category"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Nights rounds a partial day up and never returns less than one.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 1
	}

	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / constant.HoursInDay))
}

func (b Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

func (b Booking) HasBill() bool {
	return b.CheckoutBillID != nil && *b.CheckoutBillID != constant.Empty
}

// Postable reports whether charges and payments may still be posted to the folio.
func (b Booking) Postable() bool {
	return !b.Archived && !slices.Contains([]string{StatusCheckedOut, StatusCancelled}, b.Status)
}

// Transitions lists the statuses each target status may be reached from.
var Transitions = map[string][]string{
	StatusConfirmed:  {StatusPending},
	StatusCheckedIn:  {StatusConfirmed},
	StatusCheckedOut: {StatusCheckedIn},
	StatusCancelled:  {StatusPending, StatusConfirmed},
}

func CanTransit(from, to string) bool {
	return slices.Contains(Transitions[to], from)
}

func Archivable(status string) bool {
	return status == StatusCheckedOut || status == StatusCancelled
}

// CheckedOutEvent is published once a guest has left.
type CheckedOutEvent struct {
	BookingID      string          `json:"booking_id"`
	Reference      string          `json:"reference"`
	GuestName      string          `json:"guest_name"`
	GuestEmail     string          `json:"guest_email"`
	CheckoutBillID string          `json:"checkout_bill_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	RoomIDs        []string        `json:"room_ids"`
	CheckedOutAt   time.Time       `json:"checked_out_at"`
}
