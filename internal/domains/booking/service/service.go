package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	folioRepo "hotel/internal/domains/folio/repository"
	housekeepingModel "hotel/internal/domains/housekeeping/model"
	housekeepingRepo "hotel/internal/domains/housekeeping/repository"
	lockModel "hotel/internal/domains/systemlock/model"
	lockService "hotel/internal/domains/systemlock/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const errBillMissing = "checkout bill must be generated before check-out"

type Booking interface {
	Submit(ctx context.Context, req dto.Submission) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Confirm(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	folioRepo    folioRepo.Folio
	housekeeping housekeepingRepo.Housekeeping
	locks        lockService.SystemLock
	audit        auditService.Audit
	transactor   postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
	metrics      *metrics.Metrics
	now          func() time.Time
}

func New(
	repo repository.Booking,
	folioRepo folioRepo.Folio,
	housekeeping housekeepingRepo.Housekeeping,
	locks lockService.SystemLock,
	audit auditService.Audit,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
	metrics *metrics.Metrics,
) Booking {
	return &serviceImpl{
		repo:         repo,
		folioRepo:    folioRepo,
		housekeeping: housekeeping,
		locks:        locks,
		audit:        audit,
		transactor:   transactor,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
		metrics:      metrics,
		now:          timezone.Now,
	}
}

func (s *serviceImpl) record(ctx context.Context, action, id string, details map[string]any) {
	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryBookings,
		Action:     action,
		EntityType: model.EntityName,
		EntityID:   id,
		Details:    details,
	}); err != nil {
		log.Warn().Err(err).Str("booking", id).Str("action", action).Msg("failed to audit booking change")
	}
}

// load fetches a booking that may still be changed.
func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Archived {
		return booking, failure.Unprocessable("booking is archived") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.Submission) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(req.Rooms) == 0 {
		return res, failure.BadRequestFromString("a booking needs at least one room") // nolint:wrapcheck
	}

	if !req.CheckIn.IsZero() && !req.CheckOut.After(req.CheckIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)
	booking, rooms, addons := req.ToModel(actor.ID, s.now())

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if err := s.repo.InsertRoomsTx(ctx, tx, rooms); err != nil {
			return fmt.Errorf("failed to insert booking rooms: %w", err)
		}

		if err := s.folioRepo.InsertAddonsTx(ctx, tx, addons); err != nil {
			return fmt.Errorf("failed to insert booking add-ons: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to submit booking")

		return res, fmt.Errorf("failed to submit booking: %w", err)
	}

	log.Info().Str("booking", booking.ID).Str("reference", booking.Reference).Msg("booking submitted")

	res.FromModel(booking)
	res.WithRooms(rooms)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group := filter.FilterGroup()

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	rooms, err := s.repo.Rooms(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking)
	res.WithRooms(rooms)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.load(ctx, id); err != nil {
		return err
	}

	actor := shared.ActorFromContext(ctx)
	fields := shared.TransformFields(req, actor.ID)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.record(ctx, auditModel.ActionUpdate, id, fields)

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transit(ctx, id, model.StatusConfirmed, nil)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transit(ctx, id, model.StatusCheckedIn, map[string]any{model.FieldCheckedInAt: s.now()})
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transit(ctx, id, model.StatusCancelled, nil)
}

func (s *serviceImpl) transit(ctx context.Context, id, to string, extra map[string]any) error {
	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransit(booking.Status, to) {
		return failure.Unprocessable(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, to)) // nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)
	fields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: s.now(),
		constant.FieldModifiedBy: actor.ID,
	}

	for k, v := range extra {
		fields[k] = v
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("status", to).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.record(ctx, auditModel.ActionTransit, id, map[string]any{"from": booking.Status, "to": to})

	return nil
}

func (s *serviceImpl) Archive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !model.Archivable(booking.Status) {
		return failure.Unprocessable("only checked-out or cancelled bookings can be archived") // nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldArchived:      true,
		constant.FieldModifiedAt: s.now(),
		constant.FieldModifiedBy: actor.ID,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to archive booking")

		return fmt.Errorf("failed to archive booking: %w", err)
	}

	s.record(ctx, auditModel.ActionUpdate, id, map[string]any{model.FieldArchived: true})

	return nil
}

// CheckOut closes a stay. The lock check is advisory: a lock taken between the check and the write is not seen.
func (s *serviceImpl) CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	outcome := metrics.ResultError
	defer func() {
		s.metrics.Checkout.WithLabelValues(outcome).Inc()
	}()

	booking, err := s.load(ctx, id)
	if err != nil {
		if failure.GetCode(err) < 500 {
			outcome = metrics.ResultRejected
		}

		return res, err
	}

	if booking.Status != model.StatusCheckedIn {
		outcome = metrics.ResultRejected

		return res, failure.Unprocessable(fmt.Sprintf("booking is %s, only checked-in guests can check out", booking.Status)) // nolint:wrapcheck
	}

	if !booking.HasBill() {
		outcome = metrics.ResultRejected

		return res, failure.Unprocessable(errBillMissing) // nolint:wrapcheck
	}

	rooms, err := s.repo.Rooms(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	resources := []lockModel.Resource{{Type: lockModel.ResourceFolio, ID: booking.ID}}
	for _, room := range rooms {
		resources = append(resources, lockModel.Resource{Type: lockModel.ResourceRoom, ID: room.RoomID})
	}

	held, err := s.locks.FindBlocking(ctx, resources)
	if err != nil {
		return res, fmt.Errorf("failed to check system locks: %w", err)
	}

	if len(held) > 0 {
		outcome = metrics.ResultBlocked
		lock := held[0]

		return res, failure.Conflict(fmt.Sprintf("check-out blocked: %s %s is locked by %s (%s)", // nolint:wrapcheck
			lock.ResourceType, lock.ResourceID, lock.LockedBy, lock.Reason))
	}

	actor := shared.ActorFromContext(ctx)
	now := s.now()

	tasks := make([]housekeepingModel.Task, len(rooms))
	for i, room := range rooms {
		tasks[i] = housekeepingModel.CheckoutTask(room.RoomID, room.Name, booking.ID, booking.Reference, actor.ID, now)
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			model.FieldCheckedOutAt:  now,
			model.FieldCheckoutNotes: req.Notes,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.ID,
		}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if len(tasks) == 0 {
			return nil
		}

		if err := s.housekeeping.InsertBulkTx(ctx, tx, tasks); err != nil {
			return fmt.Errorf("failed to queue housekeeping: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		return res, fmt.Errorf("failed to check out booking: %w", err)
	}

	outcome = metrics.ResultSuccess

	booking.Status = model.StatusCheckedOut
	booking.CheckedOutAt = &now
	booking.CheckoutNotes = req.Notes
	booking.Touch(actor.ID, now)

	s.record(ctx, auditModel.ActionCheckOut, id, map[string]any{"rooms": len(rooms), "notes": req.Notes})

	go s.publishCheckedOut(context.WithoutCancel(ctx), booking, rooms)

	res.FromModel(booking)
	res.WithRooms(rooms)

	return res, nil
}

func (s *serviceImpl) publishCheckedOut(ctx context.Context, booking model.Booking, rooms []model.Room) {
	event := model.CheckedOutEvent{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		GuestName:    booking.GuestName,
		GuestEmail:   booking.GuestEmail,
		TotalAmount:  booking.TotalAmount,
		PaidAmount:   booking.PaidAmount,
		CheckedOutAt: *booking.CheckedOutAt,
	}

	if booking.CheckoutBillID != nil {
		event.CheckoutBillID = *booking.CheckoutBillID
	}

	for _, room := range rooms {
		event.RoomIDs = append(event.RoomIDs, room.RoomID)
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCheckedOut, kafka.Message{
		Key:   booking.ID,
		Value: event,
	}); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("failed to publish check-out event")
	}
}
