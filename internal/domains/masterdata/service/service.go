package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/masterdata/model"
	"hotel/internal/domains/masterdata/model/dto"
	"hotel/internal/domains/masterdata/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type MasterData interface {
	Create(ctx context.Context, collection model.Collection, req dto.CreateEntryRequest) (dto.EntryResponse, error)
	GetAll(ctx context.Context, collection model.Collection, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	Get(ctx context.Context, collection model.Collection, id string) (dto.EntryResponse, error)
	Update(ctx context.Context, collection model.Collection, req dto.UpdateEntryRequest, id string) error
	Delete(ctx context.Context, collection model.Collection, id string) error
	CheckUsage(ctx context.Context, collection model.Collection, id string) (dto.UsageResponse, error)
}

type serviceImpl struct {
	repo        repository.MasterData
	bookingRepo bookingRepo.Booking
	audit       auditService.Audit
	otel        otel.Otel
}

func New(repo repository.MasterData, bookingRepo bookingRepo.Booking, audit auditService.Audit, otel otel.Otel) MasterData {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		audit:       audit,
		otel:        otel,
	}
}

func checkCollection(collection model.Collection) error {
	if !collection.Valid() {
		return failure.NotFound(fmt.Sprintf("unknown master data collection %q", collection)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) record(ctx context.Context, collection model.Collection, action, id string, details any) {
	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryMasterData,
		Action:     action,
		EntityType: collection.EntityName(),
		EntityID:   id,
		Details:    details,
	}); err != nil {
		log.Warn().Err(err).Str("collection", string(collection)).Str("id", id).Msg("failed to audit master data change")
	}
}

func (s *serviceImpl) balance(ctx context.Context, collection model.Collection, id string) (bookingRepo.Balance, error) {
	balance, err := s.bookingRepo.Balance(ctx, collection.ReferenceField(), id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get running balance")

		return balance, fmt.Errorf("failed to get running balance: %w", err)
	}

	return balance, nil
}

func (s *serviceImpl) Create(ctx context.Context, collection model.Collection, req dto.CreateEntryRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return res, err
	}

	entry := req.ToModel(collection, shared.ActorFromContext(ctx).ID)

	if err = s.repo.Insert(ctx, collection, entry); err != nil {
		log.Error().Err(err).Msg("failed to create master data entry")

		return res, fmt.Errorf("failed to create master data entry: %w", err)
	}

	s.record(ctx, collection, auditModel.ActionCreate, entry.ID, req)

	res.FromModel(entry, bookingRepo.Balance{})

	return res, nil
}

// GetAll attaches every entry's running balance from a single grouped query.
func (s *serviceImpl) GetAll(ctx context.Context, collection model.Collection, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return res, err
	}

	total, err := s.repo.Count(ctx, collection, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count master data entries")

		return res, fmt.Errorf("failed to count master data entries: %w", err)
	}

	entries, err := s.repo.GetAll(ctx, collection, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get master data entries")

		return res, fmt.Errorf("failed to get master data entries: %w", err)
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}

	balances, err := s.bookingRepo.Balances(ctx, collection.ReferenceField(), ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get running balances")

		return res, fmt.Errorf("failed to get running balances: %w", err)
	}

	res.FromModels(entries, balances, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, collection model.Collection, id string) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return res, err
	}

	entry, err := s.repo.Get(ctx, collection, shared.FilterByID(id, model.FieldID, collection.TableName()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get master data entry")

		return res, fmt.Errorf("failed to get master data entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, failure.NotFound(collection.EntityName() + " not found") // nolint:wrapcheck
	}

	balance, err := s.balance(ctx, collection, id)
	if err != nil {
		return res, err
	}

	res.FromModel(entry, balance)

	return res, nil
}

func (s *serviceImpl) exist(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, collection, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check master data existence")

		return fmt.Errorf("failed to check master data existence: %w", err)
	}

	if !exist {
		return failure.NotFound(collection.EntityName() + " not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, collection model.Collection, req dto.UpdateEntryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, collection.TableName())

	if err = s.exist(ctx, collection, filter); err != nil {
		return err
	}

	fields := shared.TransformFields(req, shared.ActorFromContext(ctx).ID)

	if err = s.repo.Update(ctx, collection, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update master data entry")

		return fmt.Errorf("failed to update master data entry: %w", err)
	}

	s.record(ctx, collection, auditModel.ActionUpdate, id, req)

	return nil
}

func referencedBy(collection model.Collection, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    collection.ReferenceField(),
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) usage(ctx context.Context, collection model.Collection, id string) (int, error) {
	count, err := s.bookingRepo.Count(ctx, referencedBy(collection, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to count referencing bookings")

		return 0, fmt.Errorf("failed to count referencing bookings: %w", err)
	}

	return count, nil
}

// CheckUsage lists the bookings that would block a delete, newest first.
func (s *serviceImpl) CheckUsage(ctx context.Context, collection model.Collection, id string) (res dto.UsageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckUsage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return res, err
	}

	bookings, err := s.bookingRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		referencedBy(collection, id),
		bookingModel.FieldID, bookingModel.FieldReference, bookingModel.FieldGuestName,
		bookingModel.FieldStatus, bookingModel.FieldCheckIn, bookingModel.FieldCheckOut,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list referencing bookings")

		return res, fmt.Errorf("failed to list referencing bookings: %w", err)
	}

	res.FromBookings(bookings)

	return res, nil
}

// Delete is refused while any booking still references the entry.
func (s *serviceImpl) Delete(ctx context.Context, collection model.Collection, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkCollection(collection); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, collection.TableName())

	if err = s.exist(ctx, collection, filter); err != nil {
		return err
	}

	count, err := s.usage(ctx, collection, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return failure.Conflict(fmt.Sprintf("%s is referenced by %d booking(s)", collection.EntityName(), count)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, collection, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete master data entry")

		return fmt.Errorf("failed to delete master data entry: %w", err)
	}

	s.record(ctx, collection, auditModel.ActionDelete, id, nil)

	return nil
}
