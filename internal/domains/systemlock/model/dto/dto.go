package dto

import (
	"time"

	"hotel/internal/domains/systemlock/model"
	"hotel/shared"
	"hotel/shared/constant"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

type AcquireLockRequest struct {
	ResourceType string `json:"resource_type" validate:"required,oneof=folio room"`
	ResourceID   string `json:"resource_id"   validate:"required"`
	Reason       string `json:"reason"        validate:"required,max=255"`
	TTLMinutes   int    `json:"ttl_minutes"   validate:"omitempty,gte=1,lte=10080"`
}

func (a *AcquireLockRequest) ToModel(user string, now time.Time) model.SystemLock {
	var expiresAt *time.Time

	if a.TTLMinutes > 0 {
		exp := now.Add(time.Duration(a.TTLMinutes) * time.Minute)
		expiresAt = &exp
	}

	return model.SystemLock{
		ID:           uuid.NewString(),
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		Reason:       a.Reason,
		LockedBy:     user,
		LockedAt:     now,
		ExpiresAt:    expiresAt,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LockResponse struct {
	ID           string `json:"id"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Reason       string `json:"reason"`
	LockedBy     string `json:"locked_by"`
	LockedAt     string `json:"locked_at"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	Active       bool   `json:"active"`
}

func (r *LockResponse) FromModel(model model.SystemLock) {
	r.ID = model.ID
	r.ResourceType = model.ResourceType
	r.ResourceID = model.ResourceID
	r.Reason = model.Reason
	r.LockedBy = model.LockedBy
	r.LockedAt = model.LockedAt.Format(constant.DateFormat)
	r.Active = model.Active

	if model.ExpiresAt != nil {
		r.ExpiresAt = model.ExpiresAt.Format(constant.DateFormat)
	}
}

type GetLocksResponse struct {
	Locks     []LockResponse `json:"locks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetLocksResponse) FromModels(models []model.SystemLock, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locks = make([]LockResponse, len(models))
	for i, mod := range models {
		r.Locks[i].FromModel(mod)
	}
}
