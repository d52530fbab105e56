package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/accountdeletion/model"
	"hotel/shared"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Reason   string `json:"reason"   validate:"required,max=255"`
	Comments string `json:"comments" validate:"omitempty,max=2000"`
}

func (s *SubmitRequest) ToModel(now time.Time) model.Request {
	return model.Request{
		ID:        uuid.NewString(),
		Email:     shared.NormalizeEmail(s.Email),
		Reason:    strings.TrimSpace(s.Reason),
		Comments:  strings.TrimSpace(s.Comments),
		Status:    model.StatusPending,
		CreatedAt: now,
	}
}
