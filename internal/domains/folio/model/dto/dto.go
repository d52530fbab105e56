package dto

import (
	"time"

	"hotel/internal/domains/folio/model"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PostFoodOrderRequest struct {
	Description string          `json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"      validate:"gt=0"`
	Status      string          `json:"status"      validate:"omitempty,oneof=pending served"`
}

func (r *PostFoodOrderRequest) ToModel(bookingID, user string, now time.Time) model.FoodOrder {
	status := model.StatusPending
	if r.Status != constant.Empty {
		status = r.Status
	}

	return model.FoodOrder{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Description: r.Description,
		Amount:      r.Amount,
		Status:      status,
		Metadata:    gModel.Stamp(user, now),
	}
}

type PostGuestServiceRequest struct {
	ServiceName string          `json:"service_name" validate:"required,max=255"`
	Quantity    int             `json:"quantity"     validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"   validate:"gte=0"`
}

func (r *PostGuestServiceRequest) ToModel(bookingID, user string, now time.Time) model.GuestService {
	return model.GuestService{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		ServiceName: r.ServiceName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Status:      model.StatusPending,
		Metadata:    gModel.Stamp(user, now),
	}
}

type PostAddonRequest struct {
	AddonID  string `json:"addon_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

type PostTransactionRequest struct {
	Type      string          `json:"type"      validate:"required,oneof=payment refund"`
	Amount    decimal.Decimal `json:"amount"    validate:"gt=0"`
	Method    string          `json:"method"    validate:"required,max=50"`
	Reference string          `json:"reference" validate:"omitempty,max=100"`
}

func (r *PostTransactionRequest) ToModel(bookingID, user string, now time.Time) model.Transaction {
	return model.Transaction{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Type:      r.Type,
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		Metadata:  gModel.Stamp(user, now),
	}
}

type UpdateChargeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending served cancelled"`
}

type FoodOrderResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PostedAt    string          `json:"posted_at"`
}

type GuestServiceResponse struct {
	ID          string          `json:"id"`
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PostedAt    string          `json:"posted_at"`
}

type AddonResponse struct {
	ID          string          `json:"id"`
	AddonID     string          `json:"addon_id"`
	Name        string          `json:"name"`
	PricingType string          `json:"pricing_type"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type TransactionResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	PostedAt  string          `json:"posted_at"`
}

type FolioResponse struct {
	BookingID     string                 `json:"booking_id"`
	FoodOrders    []FoodOrderResponse    `json:"food_orders"`
	GuestServices []GuestServiceResponse `json:"guest_services"`
	Addons        []AddonResponse        `json:"addons"`
	Transactions  []TransactionResponse  `json:"transactions"`
	Paid          decimal.Decimal        `json:"paid"`
}

func (r *FolioResponse) FromModel(bookingID string, postings model.Postings) {
	r.BookingID = bookingID
	r.Paid = postings.Paid()

	r.FoodOrders = make([]FoodOrderResponse, len(postings.FoodOrders))
	for i, o := range postings.FoodOrders {
		r.FoodOrders[i] = FoodOrderResponse{
			ID:          o.ID,
			Description: o.Description,
			Amount:      o.Amount,
			Status:      o.Status,
			PostedAt:    timezone.Format(o.CreatedAt, constant.DateFormat),
		}
	}

	r.GuestServices = make([]GuestServiceResponse, len(postings.GuestServices))
	for i, s := range postings.GuestServices {
		r.GuestServices[i] = GuestServiceResponse{
			ID:          s.ID,
			ServiceName: s.ServiceName,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			Amount:      s.Amount(),
			Status:      s.Status,
			PostedAt:    timezone.Format(s.CreatedAt, constant.DateFormat),
		}
	}

	r.Addons = make([]AddonResponse, len(postings.Addons))
	for i, a := range postings.Addons {
		r.Addons[i] = AddonResponse{
			ID:          a.ID,
			AddonID:     a.AddonID,
			Name:        a.Name,
			PricingType: a.PricingType,
			UnitPrice:   a.UnitPrice,
			Quantity:    a.Quantity,
		}
	}

	r.Transactions = make([]TransactionResponse, len(postings.Transactions))
	for i, t := range postings.Transactions {
		r.Transactions[i] = TransactionResponse{
			ID:        t.ID,
			Type:      t.Type,
			Amount:    t.Amount,
			Method:    t.Method,
			Reference: t.Reference,
			PostedAt:  timezone.Format(t.CreatedAt, constant.DateFormat),
		}
	}
}
