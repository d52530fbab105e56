package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	"hotel/internal/domains/systemlock/model"
	"hotel/internal/domains/systemlock/model/dto"
	"hotel/internal/domains/systemlock/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const sweeperActor = "system"

type SystemLock interface {
	GetActive(ctx context.Context, req gDto.QueryParams, resourceType string) (dto.GetLocksResponse, error)
	Acquire(ctx context.Context, req dto.AcquireLockRequest) (dto.LockResponse, error)
	Release(ctx context.Context, id string) error
	FindBlocking(ctx context.Context, resources []model.Resource) ([]model.SystemLock, error)
	Sweep(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo    repository.SystemLock
	audit   auditService.Audit
	otel    otel.Otel
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(repo repository.SystemLock, audit auditService.Audit, otel otel.Otel, metrics *metrics.Metrics) SystemLock {
	return &serviceImpl{
		repo:    repo,
		audit:   audit,
		otel:    otel,
		metrics: metrics,
		now:     timezone.Now,
	}
}

// activeFilter matches locks that are switched on and not past their expiry.
func activeFilter(now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldExpiresAt,
						Operator: gDto.FilterIsNull,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "now",
						Field:    model.FieldExpiresAt,
						Operator: gDto.FilterOperatorGreaterEq,
						Value:    now,
						Table:    model.TableName,
					},
				},
			},
		},
	}
}

func resourceFilter(resources []model.Resource) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	for i, resource := range resources {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					ArgName:  fmt.Sprintf("resource_type_%d", i),
					Field:    model.FieldResourceType,
					Operator: gDto.FilterOperatorEq,
					Value:    resource.Type,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  fmt.Sprintf("resource_id_%d", i),
					Field:    model.FieldResourceID,
					Operator: gDto.FilterOperatorEq,
					Value:    resource.ID,
					Table:    model.TableName,
				},
			},
		})
	}

	return group
}

func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams, resourceType string) (res dto.GetLocksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := activeFilter(s.now())

	if resourceType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldResourceType,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceType,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count system locks")

		return res, fmt.Errorf("failed to count system locks: %w", err)
	}

	locks, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get system locks")

		return res, fmt.Errorf("failed to get system locks: %w", err)
	}

	res.FromModels(locks, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) FindBlocking(ctx context.Context, resources []model.Resource) (locks []model.SystemLock, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindBlocking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(resources) == 0 {
		return nil, nil
	}

	filter := activeFilter(s.now())
	filter.Filters = append(filter.Filters, resourceFilter(resources))

	locks, err = s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find blocking locks")

		return nil, fmt.Errorf("failed to find blocking locks: %w", err)
	}

	return locks, nil
}

func (s *serviceImpl) Acquire(ctx context.Context, req dto.AcquireLockRequest) (res dto.LockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Acquire")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	held, err := s.FindBlocking(ctx, []model.Resource{{Type: req.ResourceType, ID: req.ResourceID}})
	if err != nil {
		return res, err
	}

	if len(held) > 0 {
		return res, failure.Conflict(fmt.Sprintf("%s %s is already locked by %s: %s", // nolint:wrapcheck
			held[0].ResourceType, held[0].ResourceID, held[0].LockedBy, held[0].Reason))
	}

	actor := shared.ActorFromContext(ctx)
	lock := req.ToModel(actor.ID, s.now())

	if err = s.repo.Insert(ctx, lock); err != nil {
		log.Error().Err(err).Msg("failed to acquire system lock")

		return res, fmt.Errorf("failed to acquire system lock: %w", err)
	}

	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryLocks,
		Action:     auditModel.ActionAcquire,
		EntityType: lock.ResourceType,
		EntityID:   lock.ResourceID,
		Details:    map[string]any{"lock_id": lock.ID, "reason": lock.Reason},
	}); err != nil {
		log.Warn().Err(err).Str("lock", lock.ID).Msg("failed to audit lock acquisition")
	}

	res.FromModel(lock)

	return res, nil
}

func (s *serviceImpl) Release(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	lock, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get system lock")

		return fmt.Errorf("failed to get system lock: %w", err)
	}

	if lock.ID == constant.Empty {
		return failure.NotFound("system lock not found") // nolint:wrapcheck
	}

	if !lock.Active {
		return nil
	}

	actor := shared.ActorFromContext(ctx)

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: s.now(),
		constant.FieldModifiedBy: actor.ID,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to release system lock")

		return fmt.Errorf("failed to release system lock: %w", err)
	}

	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryLocks,
		Action:     auditModel.ActionRelease,
		EntityType: lock.ResourceType,
		EntityID:   lock.ResourceID,
		Details:    map[string]any{"lock_id": lock.ID},
	}); err != nil {
		log.Warn().Err(err).Str("lock", lock.ID).Msg("failed to audit lock release")
	}

	return nil
}

// Sweep switches off locks whose expiry has passed.
func (s *serviceImpl) Sweep(ctx context.Context) (released int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sweep")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	released, err = s.repo.ReleaseExpired(ctx, s.now(), sweeperActor)
	if err != nil {
		log.Error().Err(err).Msg("failed to sweep expired locks")

		return 0, fmt.Errorf("failed to sweep expired locks: %w", err)
	}

	s.metrics.LocksSwept.Add(float64(released))

	if released > 0 {
		log.Info().Int64("released", released).Msg("expired system locks released")
	}

	return released, nil
}
