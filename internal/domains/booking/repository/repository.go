package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Balance totals what a company or travel agent has been billed and has paid across its bookings.
type Balance struct {
	Bookings int             `db:"bookings"`
	Total    decimal.Decimal `db:"total"`
	Paid     decimal.Decimal `db:"paid"`
}

func (b Balance) Outstanding() decimal.Decimal {
	return b.Total.Sub(b.Paid)
}

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	InsertRoomsTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Rooms(ctx context.Context, bookingID string) ([]model.Room, error)
	Balance(ctx context.Context, field, id string) (Balance, error)
	Balances(ctx context.Context, field string, ids []string) (map[string]Balance, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rooms gRepo.Repository[model.Room]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[model.Room](model.EntityRooms, model.TableRooms, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertRoomsTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	return r.rooms.InsertBulkTx(ctx, sqltx, rooms) //nolint:wrapcheck
}

func (r *repositoryImpl) Rooms(ctx context.Context, bookingID string) ([]model.Room, error) {
	return r.rooms.GetAll( //nolint:wrapcheck
		ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		shared.FilterByID(bookingID, model.FieldBookingID, model.TableRooms),
	)
}

func balanceField(field string) error {
	if field != model.FieldCompanyID && field != model.FieldTravelAgentID {
		return fmt.Errorf("unsupported balance field %q", field)
	}

	return nil
}

func (r *repositoryImpl) Balance(ctx context.Context, field, id string) (Balance, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Balance")
	defer scope.End()

	var res Balance

	if err := balanceField(field); err != nil {
		return res, err
	}

	query := fmt.Sprintf(
		"SELECT COUNT(*) AS bookings, COALESCE(SUM(%s), 0) AS total, COALESCE(SUM(%s), 0) AS paid FROM %s WHERE %s = $1",
		model.FieldTotalAmount, model.FieldPaidAmount, model.TableName, field,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err := r.db.Read.GetContext(ctx, &res, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to sum booking balance: %w", err)
	}

	return res, nil
}

// Balances sums every id in one grouped query. Ids without bookings map to a zero Balance.
func (r *repositoryImpl) Balances(ctx context.Context, field string, ids []string) (map[string]Balance, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Balances")
	defer scope.End()

	if err := balanceField(field); err != nil {
		return nil, err
	}

	res := make(map[string]Balance, len(ids))
	for _, id := range ids {
		res[id] = Balance{}
	}

	if len(ids) == 0 {
		return res, nil
	}

	in := gDto.Filter{Field: field, Value: ids, Operator: gDto.FilterOperatorIn, ArgName: "owner"}
	where, args := in.GetWhereClause()

	query := fmt.Sprintf(
		"SELECT %[1]s AS owner_id, COUNT(*) AS bookings, COALESCE(SUM(%[2]s), 0) AS total, COALESCE(SUM(%[3]s), 0) AS paid FROM %[4]s WHERE %[5]s GROUP BY %[1]s",
		field, model.FieldTotalAmount, model.FieldPaidAmount, model.TableName, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		OwnerID string `db:"owner_id"`
		Balance
	}

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare booking balances: %w", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to sum booking balances: %w", err)
	}

	for _, row := range rows {
		res[row.OwnerID] = row.Balance
	}

	return res, nil
}
