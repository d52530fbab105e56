package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditMocks "hotel/internal/domains/audit/service/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/masterdata/mocks"
	"hotel/internal/domains/masterdata/model"
	"hotel/internal/domains/masterdata/model/dto"
	"hotel/internal/domains/masterdata/service"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.MasterData
	repo    *mocks.MockMasterData
	booking *bookingMocks.MockBooking
	audit   *auditMocks.MockAudit
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    mocks.NewMockMasterData(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		audit:   auditMocks.NewMockAudit(ctrl),
	}
	f.svc = service.New(f.repo, f.booking, f.audit, otelMocks.NewOtel())

	return f
}

func TestMasterDataService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		collection model.Collection
		setupMock  func(f fixture)
		wantCode   int
	}{
		{
			name:       "unreferenced company is deleted and audited",
			collection: model.CollectionCompanies,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(true, nil)
				f.booking.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					_, args := filter.GetWhereClause()
					assert.Equal(t, "co-1", args[bookingModel.FieldCompanyID])

					return 0, nil
				})
				f.repo.EXPECT().Delete(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(nil)
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry auditDto.Entry) error {
					assert.Equal(t, auditModel.CategoryMasterData, entry.Category)
					assert.Equal(t, auditModel.ActionDelete, entry.Action)
					assert.Equal(t, "company", entry.EntityType)

					return nil
				})
			},
		},
		{
			name:       "referenced travel agent is kept",
			collection: model.CollectionTravelAgents,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), model.CollectionTravelAgents, gomock.Any()).Return(true, nil)
				f.booking.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					_, args := filter.GetWhereClause()
					assert.Equal(t, "co-1", args[bookingModel.FieldTravelAgentID])

					return 3, nil
				})
			},
			wantCode: http.StatusConflict,
		},
		{
			name:       "missing entry",
			collection: model.CollectionCompanies,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:       "unknown collection",
			collection: model.Collection("suppliers"),
			setupMock:  func(fixture) {},
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "usage check failure",
			collection: model.CollectionCompanies,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(true, nil)
				f.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db gone"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), tt.collection, "co-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestMasterDataService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(model.Entry{
		ID: "co-1", Name: "Acme Travel", Collection: model.CollectionCompanies, Active: true,
	}, nil)
	f.booking.EXPECT().Balance(gomock.Any(), bookingModel.FieldCompanyID, "co-1").Return(bookingRepo.Balance{
		Bookings: 2,
		Total:    decimal.NewFromInt(900),
		Paid:     decimal.NewFromInt(400),
	}, nil)

	res, err := f.svc.Get(context.Background(), model.CollectionCompanies, "co-1")

	require.NoError(t, err)
	assert.Equal(t, "companies", res.Collection)
	assert.Equal(t, 2, res.Bookings)
	assert.Equal(t, "500", res.Balance.String())
}

func TestMasterDataService_CheckUsage(t *testing.T) {
	t.Run("lists the blocking bookings", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]bookingModel.Booking, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "ta-1", args[bookingModel.FieldTravelAgentID])
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				assert.Contains(t, columns, bookingModel.FieldReference)

				return []bookingModel.Booking{
					{
						ID:        "b-2",
						Reference: "HTL-0002",
						GuestName: "Ayu Lestari",
						Status:    bookingModel.StatusConfirmed,
						CheckIn:   time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
						CheckOut:  time.Date(2026, 6, 4, 12, 0, 0, 0, time.UTC),
					},
					{ID: "b-1", Reference: "HTL-0001", Status: bookingModel.StatusCheckedOut},
				}, nil
			})

		res, err := f.svc.CheckUsage(context.Background(), model.CollectionTravelAgents, "ta-1")

		require.NoError(t, err)
		assert.True(t, res.InUse)
		assert.Equal(t, 2, res.Bookings)
		require.Len(t, res.Records, 2)
		assert.Equal(t, dto.UsageRecord{
			BookingID: "b-2",
			Reference: "HTL-0002",
			GuestName: "Ayu Lestari",
			Status:    bookingModel.StatusConfirmed,
			CheckIn:   "2026-06-01",
			CheckOut:  "2026-06-04",
		}, res.Records[0])
		assert.Equal(t, "HTL-0001", res.Records[1].Reference)
	})

	t.Run("unreferenced entry", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.CheckUsage(context.Background(), model.CollectionCompanies, "co-9")

		require.NoError(t, err)
		assert.False(t, res.InUse)
		assert.Empty(t, res.Records)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newFixture(t)

		f.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db gone"))

		_, err := f.svc.CheckUsage(context.Background(), model.CollectionCompanies, "co-9")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMasterDataService_GetAll(t *testing.T) {
	t.Run("balances come from one grouped lookup", func(t *testing.T) {
		f := newFixture(t)
		params := gDto.QueryParams{Page: 1, Limit: 10}

		f.repo.EXPECT().Count(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(3, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), model.CollectionCompanies, params, gomock.Any()).Return([]model.Entry{
			{ID: "co-1", Name: "Acme Travel"},
			{ID: "co-2", Name: "Bali Corp"},
			{ID: "co-3", Name: "Quiet Ltd"},
		}, nil)
		f.booking.EXPECT().Balances(gomock.Any(), bookingModel.FieldCompanyID, []string{"co-1", "co-2", "co-3"}).
			Times(1).
			Return(map[string]bookingRepo.Balance{
				"co-1": {Bookings: 2, Total: decimal.NewFromInt(900), Paid: decimal.NewFromInt(400)},
				"co-2": {Bookings: 1, Total: decimal.NewFromInt(300), Paid: decimal.NewFromInt(300)},
				"co-3": {},
			}, nil)

		res, err := f.svc.GetAll(context.Background(), model.CollectionCompanies, params, gDto.FilterGroup{})

		require.NoError(t, err)
		require.Len(t, res.Entries, 3)
		assert.Equal(t, "500", res.Entries[0].Balance.String())
		assert.Equal(t, 2, res.Entries[0].Bookings)
		assert.True(t, res.Entries[1].Balance.IsZero())
		assert.Equal(t, 0, res.Entries[2].Bookings)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("balance lookup failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), model.CollectionCompanies, gomock.Any()).Return(1, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), model.CollectionCompanies, gomock.Any(), gomock.Any()).Return([]model.Entry{{ID: "co-1"}}, nil)
		f.booking.EXPECT().Balances(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db gone"))

		_, err := f.svc.GetAll(context.Background(), model.CollectionCompanies, gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMasterDataService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Insert(gomock.Any(), model.CollectionTravelAgents, gomock.Any()).DoAndReturn(func(_ context.Context, _ model.Collection, entry model.Entry) error {
		assert.Equal(t, "Wanderlust", entry.Name)
		assert.True(t, entry.Active)
		assert.NotEmpty(t, entry.ID)

		return nil
	})
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit table locked"))

	res, err := f.svc.Create(context.Background(), model.CollectionTravelAgents, dto.CreateEntryRequest{Name: " Wanderlust "})

	require.NoError(t, err)
	assert.True(t, res.Balance.IsZero())
}
