package dto

import (
	"hotel/internal/domains/addon/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAddonRequest struct {
	Name        string          `json:"name"         validate:"required,max=100"`
	Description string          `json:"description"  validate:"omitempty"`
	Price       decimal.Decimal `json:"price"        validate:"gte=0"`
	PricingType string          `json:"pricing_type" validate:"required,oneof=per_stay per_day per_guest"`
	Active      *bool           `json:"active"       validate:"omitempty"`
}

func (c *CreateAddonRequest) ToModel(user string) model.Addon {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Addon{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		PricingType: c.PricingType,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAddonRequest struct {
	Name        string           `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string           `db:"description"  json:"description"  validate:"omitempty"`
	Price       *decimal.Decimal `db:"price"        json:"price"        validate:"omitempty"`
	PricingType string           `db:"pricing_type" json:"pricing_type" validate:"omitempty,oneof=per_stay per_day per_guest"`
	Active      *bool            `db:"active"       json:"active"       validate:"omitempty"`
}

type AddonResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PricingType string          `json:"pricing_type"`
	Active      bool            `json:"active"`
	gDto.Metadata
}

func (r *AddonResponse) FromModel(model model.Addon) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.PricingType = model.PricingType
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAddonsResponse struct {
	Addons    []AddonResponse `json:"addons"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAddonsResponse) FromModels(models []model.Addon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Addons = make([]AddonResponse, len(models))
	for i, mod := range models {
		r.Addons[i].FromModel(mod)
	}
}
