package dto

import (
	"net/http"
	"strings"

	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/masterdata/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Name          string `json:"name"           validate:"required,max=150"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=100"`
	Email         string `json:"email"          validate:"omitempty,email,max=100"`
	Phone         string `json:"phone"          validate:"omitempty,max=30"`
	Address       string `json:"address"        validate:"omitempty,max=255"`
	Country       string `json:"country"        validate:"omitempty,max=60"`
	Active        *bool  `json:"active"         validate:"omitempty"`
}

func (c *CreateEntryRequest) ToModel(collection model.Collection, user string) model.Entry {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	now := timezone.Now()

	return model.Entry{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(c.Name),
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Country:       c.Country,
		Active:        active,
		Collection:    collection,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEntryRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=150"`
	ContactPerson string `db:"contact_person" json:"contact_person" validate:"omitempty,max=100"`
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Phone         string `db:"phone"          json:"phone"          validate:"omitempty,max=30"`
	Address       string `db:"address"        json:"address"        validate:"omitempty,max=255"`
	Country       string `db:"country"        json:"country"        validate:"omitempty,max=60"`
	Active        *bool  `db:"active"         json:"active"         validate:"omitempty"`
}

// Search matches name, contact person or e-mail.
func Search(query string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	query = strings.TrimSpace(query)
	if query == constant.Empty {
		return gDto.FilterGroup{}
	}

	for _, field := range []string{model.FieldName, model.FieldContactPerson, model.FieldEmail} {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "search_" + field,
			Field:    field,
			Value:    query,
			Operator: gDto.FilterOperatorLike,
		})
	}

	return group
}

// SearchFromRequest reads the search query parameter.
func SearchFromRequest(r *http.Request) gDto.FilterGroup {
	return Search(r.URL.Query().Get(constant.RequestParamSearch))
}

type EntryResponse struct {
	ID            string          `json:"id"`
	Collection    string          `json:"collection"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Country       string          `json:"country"`
	Active        bool            `json:"active"`
	Bookings      int             `json:"bookings"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Balance       decimal.Decimal `json:"balance"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(entry model.Entry, balance bookingRepo.Balance) {
	r.ID = entry.ID
	r.Collection = string(entry.Collection)
	r.Name = entry.Name
	r.ContactPerson = entry.ContactPerson
	r.Email = entry.Email
	r.Phone = entry.Phone
	r.Address = entry.Address
	r.Country = entry.Country
	r.Active = entry.Active
	r.Bookings = balance.Bookings
	r.TotalBilled = balance.Total
	r.TotalPaid = balance.Paid
	r.Balance = balance.Outstanding()

	r.Metadata.FromModel(entry.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// UsageRecord is one booking that still references a master data entry.
type UsageRecord struct {
	BookingID string `json:"booking_id"`
	Reference string `json:"reference"`
	GuestName string `json:"guest_name"`
	Status    string `json:"status"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

type UsageResponse struct {
	InUse    bool          `json:"in_use"`
	Bookings int           `json:"bookings"`
	Records  []UsageRecord `json:"records"`
}

func (r *UsageResponse) FromBookings(bookings []bookingModel.Booking) {
	r.InUse = len(bookings) > 0
	r.Bookings = len(bookings)

	r.Records = make([]UsageRecord, len(bookings))
	for i, booking := range bookings {
		r.Records[i] = UsageRecord{
			BookingID: booking.ID,
			Reference: booking.Reference,
			GuestName: booking.GuestName,
			Status:    booking.Status,
			CheckIn:   timezone.Format(booking.CheckIn, constant.DateOnlyFormat),
			CheckOut:  timezone.Format(booking.CheckOut, constant.DateOnlyFormat),
		}
	}
}

func (r *GetEntriesResponse) FromModels(entries []model.Entry, balances map[string]bookingRepo.Balance, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(entries))
	for i, entry := range entries {
		r.Entries[i].FromModel(entry, balances[entry.ID])
	}
}
