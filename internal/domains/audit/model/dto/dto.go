package dto

import (
	"encoding/json"

	"hotel/internal/domains/audit/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

// Entry is what a service hands over when something worth auditing happened.
type Entry struct {
	Category   string
	Action     string
	EntityType string
	EntityID   string
	Details    any
}

type LogResponse struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	ActorID    string          `json:"actor_id"`
	ActorEmail string          `json:"actor_email"`
	Details    json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt  string          `json:"created_at"`
}

func (r *LogResponse) FromModel(model model.Log) {
	r.ID = model.ID
	r.Category = model.Category
	r.Action = model.Action
	r.EntityType = model.EntityType
	r.EntityID = model.EntityID
	r.ActorID = model.ActorID
	r.ActorEmail = model.ActorEmail
	r.Details = json.RawMessage(model.Details)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if len(r.Details) == 0 {
		r.Details = json.RawMessage("{}")
	}
}

type GetLogsResponse struct {
	Logs      []LogResponse `json:"logs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetLogsResponse) FromModels(models []model.Log, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]LogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
