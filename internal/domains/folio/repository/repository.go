package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/folio/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Folio interface {
	InsertFoodOrder(ctx context.Context, order model.FoodOrder) error
	InsertGuestService(ctx context.Context, service model.GuestService) error
	InsertAddon(ctx context.Context, addon model.BookingAddon) error
	InsertAddonsTx(ctx context.Context, sqltx *sqlx.Tx, addons []model.BookingAddon) error
	InsertTransaction(ctx context.Context, transaction model.Transaction) error

	FoodOrders(ctx context.Context, bookingID string) ([]model.FoodOrder, error)
	GuestServices(ctx context.Context, bookingID string) ([]model.GuestService, error)
	Addons(ctx context.Context, bookingID string) ([]model.BookingAddon, error)
	Transactions(ctx context.Context, bookingID string) ([]model.Transaction, error)

	// SetStatus updates a food order or guest service that belongs to the booking and reports whether one matched.
	SetStatus(ctx context.Context, kind, bookingID, id, status, user string) (bool, error)
}

type repositoryImpl struct {
	foodOrders    gRepo.Repository[model.FoodOrder]
	guestServices gRepo.Repository[model.GuestService]
	addons        gRepo.Repository[model.BookingAddon]
	transactions  gRepo.Repository[model.Transaction]
}

func New(db *postgres.Connection, otel otel.Otel) Folio {
	return &repositoryImpl{
		foodOrders:    gRepo.NewRepository[model.FoodOrder](model.EntityFoodOrder, model.TableFoodOrders, model.FieldID, db, otel),
		guestServices: gRepo.NewRepository[model.GuestService](model.EntityGuestService, model.TableGuestServices, model.FieldID, db, otel),
		addons:        gRepo.NewRepository[model.BookingAddon](model.EntityAddon, model.TableAddons, model.FieldID, db, otel),
		transactions:  gRepo.NewRepository[model.Transaction](model.EntityTransaction, model.TableTransactions, model.FieldID, db, otel),
	}
}

// ofBooking lists every row of the booking in posting order.
func ofBooking(bookingID, table string) (gDto.QueryParams, gDto.FilterGroup) {
	return gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		shared.FilterByID(bookingID, model.FieldBookingID, table)
}

func (r *repositoryImpl) InsertFoodOrder(ctx context.Context, order model.FoodOrder) error {
	return r.foodOrders.Insert(ctx, order) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertGuestService(ctx context.Context, service model.GuestService) error {
	return r.guestServices.Insert(ctx, service) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertAddon(ctx context.Context, addon model.BookingAddon) error {
	return r.addons.Insert(ctx, addon) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertAddonsTx(ctx context.Context, sqltx *sqlx.Tx, addons []model.BookingAddon) error {
	if len(addons) == 0 {
		return nil
	}

	return r.addons.InsertBulkTx(ctx, sqltx, addons) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertTransaction(ctx context.Context, transaction model.Transaction) error {
	return r.transactions.Insert(ctx, transaction) //nolint:wrapcheck
}

func (r *repositoryImpl) FoodOrders(ctx context.Context, bookingID string) ([]model.FoodOrder, error) {
	params, filter := ofBooking(bookingID, model.TableFoodOrders)

	return r.foodOrders.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GuestServices(ctx context.Context, bookingID string) ([]model.GuestService, error) {
	params, filter := ofBooking(bookingID, model.TableGuestServices)

	return r.guestServices.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Addons(ctx context.Context, bookingID string) ([]model.BookingAddon, error) {
	params, filter := ofBooking(bookingID, model.TableAddons)

	return r.addons.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Transactions(ctx context.Context, bookingID string) ([]model.Transaction, error) {
	params, filter := ofBooking(bookingID, model.TableTransactions)

	return r.transactions.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) SetStatus(ctx context.Context, kind, bookingID, id, status, user string) (bool, error) {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedBy: user,
	}

	switch kind {
	case model.KindFoodOrder:
		filter := chargeFilter(model.TableFoodOrders, bookingID, id)

		exist, err := r.foodOrders.Exist(ctx, filter)
		if err != nil || !exist {
			return false, err //nolint:wrapcheck
		}

		return true, r.foodOrders.Update(ctx, fields, filter) //nolint:wrapcheck
	case model.KindGuestService:
		filter := chargeFilter(model.TableGuestServices, bookingID, id)

		exist, err := r.guestServices.Exist(ctx, filter)
		if err != nil || !exist {
			return false, err //nolint:wrapcheck
		}

		return true, r.guestServices.Update(ctx, fields, filter) //nolint:wrapcheck
	default:
		return false, fmt.Errorf("unknown charge kind %q", kind)
	}
}

func chargeFilter(table, bookingID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: table},
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: table},
		},
	}
}

// Collect reads every posting of the booking and stops at the first failure.
func Collect(ctx context.Context, repo Folio, bookingID string) (model.Postings, error) {
	var (
		postings model.Postings
		err      error
	)

	if postings.FoodOrders, err = repo.FoodOrders(ctx, bookingID); err != nil {
		return postings, fmt.Errorf("failed to get food orders: %w", err)
	}

	if postings.GuestServices, err = repo.GuestServices(ctx, bookingID); err != nil {
		return postings, fmt.Errorf("failed to get guest services: %w", err)
	}

	if postings.Addons, err = repo.Addons(ctx, bookingID); err != nil {
		return postings, fmt.Errorf("failed to get booking add-ons: %w", err)
	}

	if postings.Transactions, err = repo.Transactions(ctx, bookingID); err != nil {
		return postings, fmt.Errorf("failed to get folio transactions: %w", err)
	}

	return postings, nil
}
