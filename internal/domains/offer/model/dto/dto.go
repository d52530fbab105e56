package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/offer/engine"
	"hotel/internal/domains/offer/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	Code           string          `json:"code"            validate:"required,max=50"`
	Title          string          `json:"title"           validate:"required,max=150"`
	Description    string          `json:"description"     validate:"omitempty"`
	DiscountType   string          `json:"discount_type"   validate:"required,oneof=percentage fixed pay_x_stay_y"`
	DiscountValue  decimal.Decimal `json:"discount_value"  validate:"gte=0"`
	PayNights      int             `json:"pay_nights"      validate:"gte=0"`
	StayNights     int             `json:"stay_nights"     validate:"gte=0"`
	StartDate      string          `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	EndDate        string          `json:"end_date"        validate:"omitempty,datetime=2006-01-02"`
	MinGuests      *int            `json:"min_guests"      validate:"omitempty,gte=1"`
	MaxGuests      *int            `json:"max_guests"      validate:"omitempty,gte=1"`
	TargetAudience string          `json:"target_audience" validate:"omitempty,oneof=all_rooms specific_rooms"`
	TargetRooms    []string        `json:"target_rooms"    validate:"omitempty,dive,required"`
	Active         *bool           `json:"active"          validate:"omitempty"`
}

func (c *CreateOfferRequest) ToModel(user string) (model.Offer, error) {
	start, err := ParseStartDate(c.StartDate)
	if err != nil {
		return model.Offer{}, err
	}

	end, err := ParseEndDate(c.EndDate)
	if err != nil {
		return model.Offer{}, err
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	audience := c.TargetAudience
	if audience == constant.Empty {
		audience = model.AudienceAllRooms
	}

	return model.Offer{
		ID:             uuid.NewString(),
		Code:           strings.TrimSpace(c.Code),
		Title:          c.Title,
		Description:    c.Description,
		DiscountType:   c.DiscountType,
		DiscountValue:  c.DiscountValue,
		PayNights:      c.PayNights,
		StayNights:     c.StayNights,
		StartDate:      start,
		EndDate:        end,
		MinGuests:      c.MinGuests,
		MaxGuests:      c.MaxGuests,
		TargetAudience: audience,
		TargetRooms:    pq.StringArray(c.TargetRooms),
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateOfferRequest struct {
	Title          string           `json:"title"           validate:"omitempty,max=150"`
	Description    string           `json:"description"     validate:"omitempty"`
	DiscountType   string           `json:"discount_type"   validate:"omitempty,oneof=percentage fixed pay_x_stay_y"`
	DiscountValue  *decimal.Decimal `json:"discount_value"  validate:"omitempty"`
	PayNights      *int             `json:"pay_nights"      validate:"omitempty,gte=0"`
	StayNights     *int             `json:"stay_nights"     validate:"omitempty,gte=0"`
	StartDate      string           `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	EndDate        string           `json:"end_date"        validate:"omitempty,datetime=2006-01-02"`
	MinGuests      *int             `json:"min_guests"      validate:"omitempty,gte=1"`
	MaxGuests      *int             `json:"max_guests"      validate:"omitempty,gte=1"`
	TargetAudience string           `json:"target_audience" validate:"omitempty,oneof=all_rooms specific_rooms"`
	TargetRooms    []string         `json:"target_rooms"    validate:"omitempty,dive,required"`
	Active         *bool            `json:"active"          validate:"omitempty"`
}

// ToFields lists only the columns present in the request.
func (u *UpdateOfferRequest) ToFields(user string) (map[string]any, error) {
	fields := map[string]any{}

	if u.Title != constant.Empty {
		fields[model.FieldTitle] = u.Title
	}

	if u.Description != constant.Empty {
		fields[model.FieldDescription] = u.Description
	}

	if u.DiscountType != constant.Empty {
		fields[model.FieldDiscountType] = u.DiscountType
	}

	if u.DiscountValue != nil {
		fields[model.FieldDiscountValue] = *u.DiscountValue
	}

	if u.PayNights != nil {
		fields[model.FieldPayNights] = *u.PayNights
	}

	if u.StayNights != nil {
		fields[model.FieldStayNights] = *u.StayNights
	}

	if u.StartDate != constant.Empty {
		start, err := ParseStartDate(u.StartDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldStartDate] = start
	}

	if u.EndDate != constant.Empty {
		end, err := ParseEndDate(u.EndDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldEndDate] = end
	}

	if u.MinGuests != nil {
		fields[model.FieldMinGuests] = *u.MinGuests
	}

	if u.MaxGuests != nil {
		fields[model.FieldMaxGuests] = *u.MaxGuests
	}

	if u.TargetAudience != constant.Empty {
		fields[model.FieldTargetAudience] = u.TargetAudience
	}

	if u.TargetRooms != nil {
		fields[model.FieldTargetRooms] = pq.StringArray(u.TargetRooms)
	}

	if u.Active != nil {
		fields[model.FieldActive] = *u.Active
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields, nil
}

// ParseStartDate reads a calendar date as the first instant of that day.
func ParseStartDate(value string) (*time.Time, error) {
	if value == constant.Empty {
		return nil, nil
	}

	day, err := timezone.ParseDate(value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &day, nil
}

// ParseEndDate reads a calendar date as the last instant of that day, so the end date itself is still valid.
func ParseEndDate(value string) (*time.Time, error) {
	if value == constant.Empty {
		return nil, nil
	}

	day, err := timezone.ParseDate(value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	end := day.Add(constant.HoursInDay*time.Hour - time.Nanosecond)

	return &end, nil
}

type OfferResponse struct {
	ID             string          `json:"id"`
	Tier           string          `json:"tier"`
	Code           string          `json:"code"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	PayNights      int             `json:"pay_nights"`
	StayNights     int             `json:"stay_nights"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	MinGuests      *int            `json:"min_guests,omitempty"`
	MaxGuests      *int            `json:"max_guests,omitempty"`
	TargetAudience string          `json:"target_audience"`
	TargetRooms    []string        `json:"target_rooms"`
	Active         bool            `json:"active"`
	gDto.Metadata
}

func (r *OfferResponse) FromModel(model model.Offer) {
	r.ID = model.ID
	r.Tier = string(model.Tier)
	r.Code = model.Code
	r.Title = model.Title
	r.Description = model.Description
	r.DiscountType = model.DiscountType
	r.DiscountValue = model.DiscountValue
	r.PayNights = model.PayNights
	r.StayNights = model.StayNights
	r.MinGuests = model.MinGuests
	r.MaxGuests = model.MaxGuests
	r.TargetAudience = model.TargetAudience
	r.TargetRooms = []string(model.TargetRooms)
	r.Active = model.Active

	if model.StartDate != nil {
		r.StartDate = timezone.Format(*model.StartDate, constant.DateOnlyFormat)
	}

	if model.EndDate != nil {
		r.EndDate = timezone.Format(*model.EndDate, constant.DateOnlyFormat)
	}

	if r.TargetRooms == nil {
		r.TargetRooms = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetOffersResponse struct {
	Offers    []OfferResponse `json:"offers"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOffersResponse) FromModels(models []model.Offer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Offers = make([]OfferResponse, len(models))
	for i, mod := range models {
		r.Offers[i].FromModel(mod)
	}
}

type EvaluateRoom struct {
	Name     string          `json:"name"     validate:"omitempty"`
	Category string          `json:"category" validate:"omitempty"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type EvaluateRequest struct {
	Code   string         `json:"code"   validate:"required"`
	Guests int            `json:"guests" validate:"gte=0"`
	Nights int            `json:"nights" validate:"gte=0"`
	Rooms  []EvaluateRoom `json:"rooms"  validate:"omitempty,dive"`
}

func (e *EvaluateRequest) ToContext(now time.Time) engine.Context {
	rooms := make([]engine.RoomLine, len(e.Rooms))
	for i, room := range e.Rooms {
		rooms[i] = engine.RoomLine{Name: room.Name, Category: room.Category, Subtotal: room.Subtotal}
	}

	return engine.Context{Now: now, Guests: e.Guests, Nights: e.Nights, Rooms: rooms}
}

type EvaluateResponse struct {
	Valid    bool            `json:"valid"`
	Reason   string          `json:"reason,omitempty"`
	Code     string          `json:"code"`
	Tier     string          `json:"tier,omitempty"`
	Title    string          `json:"title,omitempty"`
	Base     decimal.Decimal `json:"base"`
	Discount decimal.Decimal `json:"discount"`
}

func (r *EvaluateResponse) FromResult(code string, result engine.Result) {
	r.Valid = result.Applied
	r.Reason = result.Reason
	r.Code = code
	r.Base = result.Base
	r.Discount = result.Discount

	if result.Applied {
		r.Code = result.Offer.Code
		r.Tier = string(result.Offer.Tier)
		r.Title = result.Offer.Title
	}
}
