package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotel/infras/otel"
	auditModel "hotel/internal/domains/audit/model"
	auditRepo "hotel/internal/domains/audit/repository"
	auditService "hotel/internal/domains/audit/service"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/export/sheet"
	masterModel "hotel/internal/domains/masterdata/model"
	masterDto "hotel/internal/domains/masterdata/model/dto"
	masterRepo "hotel/internal/domains/masterdata/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	ResourceBookings     = "bookings"
	ResourceCompanies    = "companies"
	ResourceTravelAgents = "travel_agents"
	ResourceAuditLogs    = "audit_logs"
)

// Filters carries the list filters of every exportable resource. Only the ones the resource understands apply.
type Filters struct {
	Bookings bookingDto.ListFilter
	Search   string
	Category string
}

type Export interface {
	Export(ctx context.Context, resource string, filters Filters) ([]byte, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	masterRepo  masterRepo.MasterData
	auditRepo   auditRepo.Audit
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, masterRepo masterRepo.MasterData, auditRepo auditRepo.Audit, otel otel.Otel) Export {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		masterRepo:  masterRepo,
		auditRepo:   auditRepo,
		otel:        otel,
	}
}

// everything is unpaged, newest first.
var everything = gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

func (s *serviceImpl) Export(ctx context.Context, resource string, filters Filters) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch resource {
	case ResourceBookings:
		return s.bookings(ctx, filters.Bookings)
	case ResourceCompanies:
		return s.masterData(ctx, masterModel.CollectionCompanies, filters.Search)
	case ResourceTravelAgents:
		return s.masterData(ctx, masterModel.CollectionTravelAgents, filters.Search)
	case ResourceAuditLogs:
		return s.auditLogs(ctx, filters.Search, filters.Category)
	}

	return nil, failure.NotFound(fmt.Sprintf("unknown export resource %q", resource)) // nolint:wrapcheck
}

func optional(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

func (s *serviceImpl) bookings(ctx context.Context, filter bookingDto.ListFilter) ([]byte, error) {
	bookings, err := s.bookingRepo.GetAll(ctx, everything, filter.FilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to export bookings")

		return nil, fmt.Errorf("failed to export bookings: %w", err)
	}

	out := sheet.New(
		"reference", "guest_name", "guest_email", "guest_phone", "guests", "check_in", "check_out", "status",
		"company_id", "travel_agent_id", "coupon_code", "discount", "total", "paid", "archived", "created_at",
	)

	for _, b := range bookings {
		out.Append(
			b.Reference, b.GuestName, b.GuestEmail, b.GuestPhone, strconv.Itoa(b.GuestCount),
			timezone.Format(b.CheckIn, constant.DateOnlyFormat), timezone.Format(b.CheckOut, constant.DateOnlyFormat), b.Status,
			optional(b.CompanyID), optional(b.TravelAgentID), optional(b.CouponCode),
			b.DiscountAmount.StringFixed(2), b.TotalAmount.StringFixed(2), b.PaidAmount.StringFixed(2),
			strconv.FormatBool(b.Archived), timezone.Format(b.CreatedAt, constant.DateFormat),
		)
	}

	return out.Bytes(), nil
}

func (s *serviceImpl) masterData(ctx context.Context, collection masterModel.Collection, search string) ([]byte, error) {
	entries, err := s.masterRepo.GetAll(ctx, collection, everything, masterDto.Search(search))
	if err != nil {
		log.Error().Err(err).Str("collection", string(collection)).Msg("failed to export master data")

		return nil, fmt.Errorf("failed to export %s: %w", collection, err)
	}

	out := sheet.New("name", "contact_person", "email", "phone", "address", "country", "active", "outstanding")

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}

	balances, err := s.bookingRepo.Balances(ctx, collection.ReferenceField(), ids)
	if err != nil {
		log.Error().Err(err).Str("collection", string(collection)).Msg("failed to get running balances")

		return nil, fmt.Errorf("failed to get running balances: %w", err)
	}

	for _, entry := range entries {
		out.Append(
			entry.Name, entry.ContactPerson, entry.Email, entry.Phone, entry.Address, entry.Country,
			strconv.FormatBool(entry.Active), balances[entry.ID].Outstanding().StringFixed(2),
		)
	}

	return out.Bytes(), nil
}

func (s *serviceImpl) auditLogs(ctx context.Context, search, category string) ([]byte, error) {
	logs, err := s.auditRepo.GetAll(ctx, gDto.QueryParams{SortBy: auditModel.FieldCreatedAt, SortDir: gDto.SortDirDesc}, auditService.Filter(search, category))
	if err != nil {
		log.Error().Err(err).Msg("failed to export audit logs")

		return nil, fmt.Errorf("failed to export audit logs: %w", err)
	}

	out := sheet.New("created_at", "category", "action", "entity_type", "entity_id", "actor_email", "details")

	for _, entry := range logs {
		out.Append(
			timezone.Format(entry.CreatedAt, constant.DateFormat), entry.Category, entry.Action,
			entry.EntityType, entry.EntityID, entry.ActorEmail, entry.Details.String(),
		)
	}

	return out.Bytes(), nil
}
