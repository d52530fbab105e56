package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	"hotel/internal/domains/billing/builder"
	"hotel/internal/domains/billing/model"
	"hotel/internal/domains/billing/model/dto"
	"hotel/internal/domains/billing/repository"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	folioRepo "hotel/internal/domains/folio/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/money"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Billing interface {
	Generate(ctx context.Context, bookingID string) (dto.GenerateBillResponse, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
}

type serviceImpl struct {
	repo        repository.Bill
	bookingRepo bookingRepo.Booking
	folioRepo   folioRepo.Folio
	audit       auditService.Audit
	transactor  postgres.Transactor
	cfg         *config.Config
	otel        otel.Otel
	metrics     *metrics.Metrics
	now         func() time.Time
}

func New(
	repo repository.Bill,
	bookingRepo bookingRepo.Booking,
	folioRepo folioRepo.Folio,
	audit auditService.Audit,
	transactor postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
	metrics *metrics.Metrics,
) Billing {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		folioRepo:   folioRepo,
		audit:       audit,
		transactor:  transactor,
		cfg:         cfg,
		otel:        otel,
		metrics:     metrics,
		now:         timezone.Now,
	}
}

// Generate derives the bill from the current folio and stores it, replacing any earlier bill of the booking.
// Source reads are not isolated from concurrent postings; only the writes share a transaction.
func (s *serviceImpl) Generate(ctx context.Context, bookingID string) (res dto.GenerateBillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	outcome := metrics.ResultError
	defer func() {
		s.metrics.BillGeneration.WithLabelValues(outcome).Inc()
	}()

	bookingFilter := shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)

	booking, err := s.bookingRepo.Get(ctx, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		outcome = metrics.ResultRejected

		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Archived {
		outcome = metrics.ResultRejected

		return res, failure.Unprocessable("booking is archived") // nolint:wrapcheck
	}

	rooms, err := s.bookingRepo.Rooms(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	postings, err := folioRepo.Collect(ctx, s.folioRepo, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to read folio")

		return res, err
	}

	statement := builder.Build(builder.Input{
		Booking:           booking,
		Rooms:             rooms,
		Postings:          postings,
		ServiceTaxPercent: money.FromFloat(s.cfg.Billing.ServiceTaxPercent),
	})

	actor := shared.ActorFromContext(ctx)
	now := s.now()
	regenerate := booking.HasBill()

	billID := uuid.NewString()
	if regenerate {
		billID = *booking.CheckoutBillID
	}

	bill, err := statement.ToModel(billID, bookingID, gModel.Stamp(actor.ID, now), now)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode checkout bill")

		return res, err
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if regenerate {
			if err := s.repo.UpdateTx(ctx, tx, bill.Fields(), shared.FilterByID(billID, model.FieldID, model.TableName)); err != nil {
				return fmt.Errorf("failed to overwrite checkout bill: %w", err)
			}
		} else if err := s.repo.InsertTx(ctx, tx, bill); err != nil {
			return fmt.Errorf("failed to insert checkout bill: %w", err)
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldCheckoutBillID: billID,
			bookingModel.FieldTotalAmount:    bill.TotalAmount,
			bookingModel.FieldPaidAmount:     bill.PaidAmount,
			constant.FieldModifiedAt:         now,
			constant.FieldModifiedBy:         actor.ID,
		}, bookingFilter); err != nil {
			return fmt.Errorf("failed to link checkout bill: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to store checkout bill")

		return res, fmt.Errorf("failed to store checkout bill: %w", err)
	}

	outcome = metrics.ResultSuccess

	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryBilling,
		Action:     auditModel.ActionGenerate,
		EntityType: model.EntityName,
		EntityID:   billID,
		Details: map[string]any{
			"booking_id":  bookingID,
			"total":       bill.TotalAmount,
			"balance":     bill.Balance,
			"regenerated": regenerate,
		},
	}); err != nil {
		log.Warn().Err(err).Str("bill", billID).Msg("failed to audit bill generation")
	}

	return dto.GenerateBillResponse{
		BillID:        billID,
		TotalAmount:   bill.TotalAmount,
		Balance:       bill.Balance,
		PaymentStatus: bill.PaymentStatus,
	}, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bill, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkout bill")

		return res, fmt.Errorf("failed to get checkout bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return res, failure.NotFound("checkout bill not found") // nolint:wrapcheck
	}

	if err = res.FromModel(bill, s.cfg.Billing.Currency); err != nil {
		log.Error().Err(err).Str("bill", id).Msg("failed to read checkout bill")

		return res, err
	}

	return res, nil
}
