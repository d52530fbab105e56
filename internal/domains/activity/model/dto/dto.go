package dto

import (
	"mime/multipart"
	"net/http"

	"hotel/internal/domains/activity/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateActivityRequest struct {
	Title       string          `json:"title"       validate:"required,min=3,max=100"`
	Description string          `json:"description"`
	Schedule    string          `json:"schedule"    validate:"omitempty,max=100"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0"`
	Images      []string        `json:"images"      validate:"omitempty,dive,url"`
	Active      *bool           `json:"active"`
}

func (c *CreateActivityRequest) ToModel(user string) model.Activity {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Activity{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Schedule:    c.Schedule,
		Price:       c.Price,
		Images:      pq.StringArray(c.Images),
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateActivityRequest struct {
	Title       string           `json:"title"       validate:"omitempty,min=3,max=100"`
	Description string           `json:"description" validate:"omitempty"`
	Schedule    string           `json:"schedule"    validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty"`
	Images      []string         `json:"images"      validate:"omitempty,dive,url"`
	Active      *bool            `json:"active"`
}

func (u *UpdateActivityRequest) ToFields(user string) map[string]any {
	fields := map[string]any{}

	if u.Title != constant.Empty {
		fields[model.FieldTitle] = u.Title
	}

	if u.Description != constant.Empty {
		fields[model.FieldDescription] = u.Description
	}

	if u.Schedule != constant.Empty {
		fields[model.FieldSchedule] = u.Schedule
	}

	if u.Price != nil {
		fields[model.FieldPrice] = *u.Price
	}

	if u.Images != nil {
		fields[model.FieldImages] = pq.StringArray(u.Images)
	}

	if u.Active != nil {
		fields[model.FieldActive] = *u.Active
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields
}

// Filter builds the list filter from title and active query parameters. Public listings force active.
func Filter(r *http.Request, public bool) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if title := r.URL.Query().Get(model.FieldTitle); title != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))
	if public {
		yes := true
		active = &yes
	}

	if active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	return filter
}

type ActivityResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Schedule    string          `json:"schedule"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Active      bool            `json:"active"`
	gDto.Metadata
}

func (r *ActivityResponse) FromModel(model model.Activity) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Schedule = model.Schedule
	r.Price = model.Price
	r.Images = []string(model.Images)
	r.Active = model.Active

	if r.Images == nil {
		r.Images = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, m := range models {
		r.Activities[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"  swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
