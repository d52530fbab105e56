package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	addonModel "hotel/internal/domains/addon/model"
	addonRepo "hotel/internal/domains/addon/repository"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/folio/model"
	"hotel/internal/domains/folio/model/dto"
	"hotel/internal/domains/folio/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Folio interface {
	List(ctx context.Context, bookingID string) (dto.FolioResponse, error)
	PostFoodOrder(ctx context.Context, bookingID string, req dto.PostFoodOrderRequest) error
	PostGuestService(ctx context.Context, bookingID string, req dto.PostGuestServiceRequest) error
	PostAddon(ctx context.Context, bookingID string, req dto.PostAddonRequest) error
	PostTransaction(ctx context.Context, bookingID string, req dto.PostTransactionRequest) error
	SetChargeStatus(ctx context.Context, bookingID, kind, chargeID string, req dto.UpdateChargeStatusRequest) error
}

type serviceImpl struct {
	repo        repository.Folio
	bookingRepo bookingRepo.Booking
	addonRepo   addonRepo.Addon
	audit       auditService.Audit
	otel        otel.Otel
	now         func() time.Time
}

func New(repo repository.Folio, bookingRepo bookingRepo.Booking, addonRepo addonRepo.Addon, audit auditService.Audit, otel otel.Otel) Folio {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		addonRepo:   addonRepo,
		audit:       audit,
		otel:        otel,
		now:         timezone.Now,
	}
}

func (s *serviceImpl) booking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// open returns the booking only while it still accepts postings.
func (s *serviceImpl) open(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.booking(ctx, id)
	if err != nil {
		return booking, err
	}

	if !booking.Postable() {
		return booking, failure.Unprocessable(fmt.Sprintf("folio of a %s booking is closed", closedState(booking))) // nolint:wrapcheck
	}

	return booking, nil
}

func closedState(booking bookingModel.Booking) string {
	if booking.Archived {
		return "archived"
	}

	return booking.Status
}

func (s *serviceImpl) record(ctx context.Context, action, bookingID, entity, id string, details map[string]any) {
	details["booking_id"] = bookingID

	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryFolio,
		Action:     action,
		EntityType: entity,
		EntityID:   id,
		Details:    details,
	}); err != nil {
		log.Warn().Err(err).Str("booking", bookingID).Msg("failed to audit folio posting")
	}
}

func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.booking(ctx, bookingID); err != nil {
		return res, err
	}

	postings, err := repository.Collect(ctx, s.repo, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to read folio")

		return res, err
	}

	res.FromModel(bookingID, postings)

	return res, nil
}

func (s *serviceImpl) PostFoodOrder(ctx context.Context, bookingID string, req dto.PostFoodOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostFoodOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.open(ctx, bookingID); err != nil {
		return err
	}

	order := req.ToModel(bookingID, shared.ActorFromContext(ctx).ID, s.now())

	if err = s.repo.InsertFoodOrder(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to post food order")

		return fmt.Errorf("failed to post food order: %w", err)
	}

	s.record(ctx, auditModel.ActionPost, bookingID, model.EntityFoodOrder, order.ID, map[string]any{"amount": order.Amount})

	return nil
}

func (s *serviceImpl) PostGuestService(ctx context.Context, bookingID string, req dto.PostGuestServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostGuestService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.open(ctx, bookingID); err != nil {
		return err
	}

	service := req.ToModel(bookingID, shared.ActorFromContext(ctx).ID, s.now())

	if err = s.repo.InsertGuestService(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to post guest service")

		return fmt.Errorf("failed to post guest service: %w", err)
	}

	s.record(ctx, auditModel.ActionPost, bookingID, model.EntityGuestService, service.ID, map[string]any{"amount": service.Amount()})

	return nil
}

func (s *serviceImpl) PostAddon(ctx context.Context, bookingID string, req dto.PostAddonRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostAddon")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.open(ctx, bookingID); err != nil {
		return err
	}

	addon, err := s.addonRepo.Get(ctx, shared.FilterByID(req.AddonID, addonModel.FieldID, addonModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get add-on")

		return fmt.Errorf("failed to get add-on: %w", err)
	}

	if addon.ID == constant.Empty || !addon.Active {
		return failure.NotFound("add-on not found") // nolint:wrapcheck
	}

	user := shared.ActorFromContext(ctx).ID
	now := s.now()
	line := model.NewAddonLine(bookingID, addon.ID, addon.Name, addon.PricingType, addon.Price, req.Quantity, gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	})

	if err = s.repo.InsertAddon(ctx, line); err != nil {
		log.Error().Err(err).Msg("failed to post add-on")

		return fmt.Errorf("failed to post add-on: %w", err)
	}

	s.record(ctx, auditModel.ActionPost, bookingID, model.EntityAddon, line.ID, map[string]any{"addon_id": addon.ID, "quantity": line.Quantity})

	return nil
}

func (s *serviceImpl) PostTransaction(ctx context.Context, bookingID string, req dto.PostTransactionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.open(ctx, bookingID); err != nil {
		return err
	}

	transaction := req.ToModel(bookingID, shared.ActorFromContext(ctx).ID, s.now())

	if err = s.repo.InsertTransaction(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to post folio transaction")

		return fmt.Errorf("failed to post folio transaction: %w", err)
	}

	s.record(ctx, auditModel.ActionPost, bookingID, model.EntityTransaction, transaction.ID, map[string]any{
		"type":   transaction.Type,
		"amount": transaction.Amount,
		"method": transaction.Method,
	})

	return nil
}

func (s *serviceImpl) SetChargeStatus(ctx context.Context, bookingID, kind, chargeID string, req dto.UpdateChargeStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetChargeStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if kind != model.KindFoodOrder && kind != model.KindGuestService {
		return failure.NotFound("charge kind not found") // nolint:wrapcheck
	}

	if _, err = s.open(ctx, bookingID); err != nil {
		return err
	}

	found, err := s.repo.SetStatus(ctx, kind, bookingID, chargeID, req.Status, shared.ActorFromContext(ctx).ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update charge status")

		return fmt.Errorf("failed to update charge status: %w", err)
	}

	if !found {
		return failure.NotFound("charge not found") // nolint:wrapcheck
	}

	s.record(ctx, auditModel.ActionUpdate, bookingID, kind, chargeID, map[string]any{"status": req.Status})

	return nil
}
