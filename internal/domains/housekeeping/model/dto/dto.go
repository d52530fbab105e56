package dto

import (
	"hotel/internal/domains/housekeeping/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	RoomName string `json:"room_name" validate:"required,max=100"`
	Title    string `json:"title"     validate:"required,max=255"`
	Notes    string `json:"notes"     validate:"omitempty,max=1000"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	return model.Task{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		RoomName: c.RoomName,
		Title:    c.Title,
		Notes:    c.Notes,
		Status:   model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaskRequest struct {
	Status string `db:"status" json:"status" validate:"omitempty,oneof=pending in_progress done"`
	Notes  string `db:"notes"  json:"notes"  validate:"omitempty,max=1000"`
}

type TaskResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	BookingID string `json:"booking_id,omitempty"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.Title = model.Title
	r.Notes = model.Notes
	r.Status = model.Status

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
