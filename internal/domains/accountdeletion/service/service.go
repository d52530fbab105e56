package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/accountdeletion/model"
	"hotel/internal/domains/accountdeletion/model/dto"
	"hotel/internal/domains/accountdeletion/repository"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	MessageReceived = "Your account deletion request has been received and will be processed within 30 days."
	MessagePending  = "A deletion request for this account is already being processed."
)

type AccountDeletion interface {
	// Submit returns the message shown to the requester.
	Submit(ctx context.Context, req dto.SubmitRequest) (string, error)
}

type serviceImpl struct {
	repo  repository.Request
	audit auditService.Audit
	otel  otel.Otel
	now   func() time.Time
}

func New(repo repository.Request, audit auditService.Audit, otel otel.Otel) AccountDeletion {
	return &serviceImpl{
		repo:  repo,
		audit: audit,
		otel:  otel,
		now:   timezone.Now,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := shared.NormalizeEmail(req.Email)

	pending, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check pending deletion requests")

		return msg, fmt.Errorf("failed to check pending deletion requests: %w", err)
	}

	if pending {
		return MessagePending, nil
	}

	request := req.ToModel(s.now())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to store deletion request")

		return msg, fmt.Errorf("failed to store deletion request: %w", err)
	}

	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryUsers,
		Action:     auditModel.ActionDeleteReq,
		EntityType: model.EntityName,
		EntityID:   request.ID,
		Details:    map[string]any{"email": request.Email, "reason": request.Reason},
	}); err != nil {
		log.Warn().Err(err).Str("request", request.ID).Msg("failed to audit deletion request")
	}

	return MessageReceived, nil
}
