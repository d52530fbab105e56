package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/audit/model"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/domains/audit/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Audit interface {
	Record(ctx context.Context, entry dto.Entry) error
	GetAll(ctx context.Context, req gDto.QueryParams, search, category string) (dto.GetLogsResponse, error)
}

type serviceImpl struct {
	repo repository.Audit
	otel otel.Otel
}

func New(repo repository.Audit, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Filter matches category exactly and search as a substring of the action, entity or actor columns.
func Filter(search, category string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if category != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if search != constant.Empty {
		group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

		for _, field := range []string{model.FieldAction, model.FieldEntityType, model.FieldEntityID, model.FieldActorEmail} {
			group.Filters = append(group.Filters, gDto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    model.TableName,
			})
		}

		filter.Filters = append(filter.Filters, group)
	}

	return filter
}

func (s *serviceImpl) Record(ctx context.Context, entry dto.Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	details := []byte("{}")

	if entry.Details != nil {
		details, err = json.Marshal(entry.Details)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal audit details")

			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}

	actor := shared.ActorFromContext(ctx)

	if err = s.repo.Insert(ctx, model.Log{
		ID:         uuid.NewString(),
		Category:   entry.Category,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Details:    details,
		CreatedAt:  timezone.Now(),
	}); err != nil {
		log.Error().Err(err).Str("category", entry.Category).Str("action", entry.Action).Msg("failed to record audit log")

		return fmt.Errorf("failed to record audit log: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, search, category string) (res dto.GetLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := Filter(search, category)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(logs, total, req.Limit)

	return res, nil
}
