package dto

import (
	"mime/multipart"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Image is an uploaded multipart file. Both fields are nil when no file was sent.
type Image struct {
	Header *multipart.FileHeader
	File   multipart.File
}

type CreateRoomRequest struct {
	Name        string                `json:"name"         validate:"required,max=100"`
	Kind        string                `json:"kind"         validate:"required,oneof=room villa"`
	Category    string                `json:"category"     validate:"omitempty,max=100"`
	Description string                `json:"description"  validate:"omitempty"`
	Capacity    int                   `json:"capacity"     validate:"omitempty,min=0"`
	NightlyRate decimal.Decimal       `json:"nightly_rate" validate:"gte=0"`
	TaxRate     decimal.Decimal       `json:"tax_rate"     validate:"gte=0"`
	Image       *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) SetImage(image Image) {
	c.Image, c.ImageFile = image.Header, image.File
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Kind:        c.Kind,
		Category:    c.Category,
		Description: c.Description,
		Capacity:    c.Capacity,
		NightlyRate: c.NightlyRate,
		TaxRate:     c.TaxRate,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Kind        string                `db:"kind"         json:"kind"         validate:"omitempty,oneof=room villa"`
	Category    string                `db:"category"     json:"category"     validate:"omitempty,max=100"`
	Description string                `db:"description"  json:"description"  validate:"omitempty"`
	Capacity    *int                  `db:"capacity"     json:"capacity"     validate:"omitempty,min=0"`
	NightlyRate *decimal.Decimal      `db:"nightly_rate" json:"nightly_rate" validate:"omitempty"`
	TaxRate     *decimal.Decimal      `db:"tax_rate"     json:"tax_rate"     validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"       json:"active"       validate:"omitempty"`
}

func (u *UpdateRoomRequest) SetImage(image Image) {
	u.Image, u.ImageFile = image.Header, image.File
}

type RoomResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Image       string          `json:"image"`
	Active      bool            `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Kind = model.Kind
	r.Category = model.Category
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.NightlyRate = model.NightlyRate
	r.TaxRate = model.TaxRate
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
