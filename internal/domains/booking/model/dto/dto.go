package dto

import (
	"net/http"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	folioModel "hotel/internal/domains/folio/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const referencePrefix = "BK-"

// Submission is a priced reservation ready to be stored, usually built from a cart.
type Submission struct {
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	GuestCount    int
	CheckIn       time.Time
	CheckOut      time.Time
	CompanyID     *string
	TravelAgentID *string
	CouponCode    *string
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Rooms         []model.Room
	Addons        []folioModel.BookingAddon
}

// ToModel assigns identifiers to the booking and every line copied onto it.
func (s *Submission) ToModel(user string, now time.Time) (model.Booking, []model.Room, []folioModel.BookingAddon) {
	id := uuid.NewString()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	booking := model.Booking{
		ID:             id,
		Reference:      referencePrefix + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8]),
		GuestName:      s.GuestName,
		GuestEmail:     s.GuestEmail,
		GuestPhone:     s.GuestPhone,
		GuestCount:     max(s.GuestCount, 1),
		CheckIn:        s.CheckIn,
		CheckOut:       s.CheckOut,
		Status:         model.StatusPending,
		CompanyID:      s.CompanyID,
		TravelAgentID:  s.TravelAgentID,
		CouponCode:     s.CouponCode,
		DiscountAmount: s.Discount,
		TotalAmount:    s.Total,
		PaidAmount:     decimal.Zero,
		Metadata:       meta,
	}

	rooms := make([]model.Room, len(s.Rooms))
	for i, room := range s.Rooms {
		room.ID = uuid.NewString()
		room.BookingID = id
		room.CreatedAt = now
		rooms[i] = room
	}

	addons := make([]folioModel.BookingAddon, len(s.Addons))
	for i, addon := range s.Addons {
		addons[i] = folioModel.NewAddonLine(id, addon.AddonID, addon.Name, addon.PricingType, addon.UnitPrice, addon.Quantity, meta)
	}

	return booking, rooms, addons
}

type CheckOutRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateBookingRequest struct {
	GuestName     string  `db:"guest_name"      json:"guest_name"      validate:"omitempty,max=100"`
	GuestEmail    string  `db:"guest_email"     json:"guest_email"     validate:"omitempty,email,max=100"`
	GuestPhone    string  `db:"guest_phone"     json:"guest_phone"     validate:"omitempty,max=20"`
	CompanyID     *string `db:"company_id"      json:"company_id"      validate:"omitempty"`
	TravelAgentID *string `db:"travel_agent_id" json:"travel_agent_id" validate:"omitempty"`
}

// ListFilter narrows the booking list and the booking export.
type ListFilter struct {
	Search        string
	Status        string
	CompanyID     string
	TravelAgentID string
	Archived      *bool
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Search = query.Get(constant.RequestParamSearch)
	f.Status = query.Get(model.FieldStatus)
	f.CompanyID = query.Get(model.FieldCompanyID)
	f.TravelAgentID = query.Get(model.FieldTravelAgentID)
	f.Archived = shared.ConvertStringToBool(query.Get(model.FieldArchived))
}

func (f ListFilter) FilterGroup() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for field, value := range map[string]string{
		model.FieldStatus:        f.Status,
		model.FieldCompanyID:     f.CompanyID,
		model.FieldTravelAgentID: f.TravelAgentID,
	} {
		if value == constant.Empty {
			continue
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	if f.Archived != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldArchived,
			Operator: gDto.FilterOperatorEq,
			Value:    *f.Archived,
			Table:    model.TableName,
		})
	}

	if f.Search != constant.Empty {
		group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

		for _, field := range []string{model.FieldReference, model.FieldGuestName, model.FieldGuestEmail} {
			group.Filters = append(group.Filters, gDto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    f.Search,
				Table:    model.TableName,
			})
		}

		filter.Filters = append(filter.Filters, group)
	}

	return filter
}

type RoomResponse struct {
	RoomID      string          `json:"room_id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

type BookingResponse struct {
	ID             string          `json:"id"`
	Reference      string          `json:"reference"`
	GuestName      string          `json:"guest_name"`
	GuestEmail     string          `json:"guest_email"`
	GuestPhone     string          `json:"guest_phone"`
	GuestCount     int             `json:"guest_count"`
	CheckIn        string          `json:"check_in"`
	CheckOut       string          `json:"check_out"`
	Nights         int             `json:"nights"`
	Status         string          `json:"status"`
	CompanyID      *string         `json:"company_id"`
	TravelAgentID  *string         `json:"travel_agent_id"`
	CheckoutBillID *string         `json:"checkout_bill_id"`
	CouponCode     *string         `json:"coupon_code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	CheckedInAt    *string         `json:"checked_in_at"`
	CheckedOutAt   *string         `json:"checked_out_at"`
	CheckoutNotes  string          `json:"checkout_notes"`
	Archived       bool            `json:"archived"`
	Rooms          []RoomResponse  `json:"rooms,omitempty"`
	gDto.Metadata
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.GuestCount = model.GuestCount
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.Status = model.Status
	r.CompanyID = model.CompanyID
	r.TravelAgentID = model.TravelAgentID
	r.CheckoutBillID = model.CheckoutBillID
	r.CouponCode = model.CouponCode
	r.DiscountAmount = model.DiscountAmount
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.CheckedInAt = formatOptional(model.CheckedInAt)
	r.CheckedOutAt = formatOptional(model.CheckedOutAt)
	r.CheckoutNotes = model.CheckoutNotes
	r.Archived = model.Archived
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) WithRooms(rooms []model.Room) {
	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i] = RoomResponse{
			RoomID:      room.RoomID,
			Name:        room.Name,
			Kind:        room.Kind,
			Category:    room.Category,
			NightlyRate: room.NightlyRate,
			TaxRate:     room.TaxRate,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
