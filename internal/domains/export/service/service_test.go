package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	auditMocks "hotel/internal/domains/audit/mocks"
	auditModel "hotel/internal/domains/audit/model"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/export/service"
	masterMocks "hotel/internal/domains/masterdata/mocks"
	masterModel "hotel/internal/domains/masterdata/model"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.Export
	booking *bookingMocks.MockBooking
	master  *masterMocks.MockMasterData
	audit   *auditMocks.MockAudit
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		booking: bookingMocks.NewMockBooking(ctrl),
		master:  masterMocks.NewMockMasterData(ctrl),
		audit:   auditMocks.NewMockAudit(ctrl),
	}
	f.svc = service.New(f.booking, f.master, f.audit, otelMocks.NewOtel())

	return f
}

func lines(body []byte) []string {
	return strings.Split(strings.TrimSuffix(string(body), "\r\n"), "\r\n")
}

func TestExportService_Bookings(t *testing.T) {
	f := newFixture(t)
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	f.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			assert.Zero(t, params.Limit)

			_, args := filter.GetWhereClause()
			assert.Equal(t, bookingModel.StatusCheckedOut, args[bookingModel.FieldStatus])

			return []bookingModel.Booking{{
				Reference:   "BK-1A2B3C4D",
				GuestName:   `Ayu "Ay" Lestari`,
				GuestCount:  2,
				CheckIn:     checkIn,
				CheckOut:    checkIn.AddDate(0, 0, 2),
				Status:      bookingModel.StatusCheckedOut,
				TotalAmount: decimal.NewFromInt(330),
				PaidAmount:  decimal.NewFromInt(330),
			}}, nil
		})

	body, err := f.svc.Export(context.Background(), service.ResourceBookings, service.Filters{
		Bookings: bookingDto.ListFilter{Status: bookingModel.StatusCheckedOut},
	})

	require.NoError(t, err)

	rows := lines(body)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], `"reference","guest_name"`))
	assert.Contains(t, rows[1], `"Ayu ""Ay"" Lestari"`)
	assert.Contains(t, rows[1], `"330.00"`)
	assert.Contains(t, rows[1], `"2026-06-01"`)
}

func TestExportService_MasterData(t *testing.T) {
	f := newFixture(t)

	f.master.EXPECT().GetAll(gomock.Any(), masterModel.CollectionTravelAgents, gomock.Any(), gomock.Any()).Return([]masterModel.Entry{
		{ID: "ta-1", Name: "Wanderlust", Active: true},
	}, nil)
	f.booking.EXPECT().Balances(gomock.Any(), bookingModel.FieldTravelAgentID, []string{"ta-1"}).Return(map[string]bookingRepo.Balance{
		"ta-1": {Total: decimal.NewFromInt(500), Paid: decimal.NewFromInt(125)},
	}, nil)

	body, err := f.svc.Export(context.Background(), service.ResourceTravelAgents, service.Filters{Search: "wander"})

	require.NoError(t, err)

	rows := lines(body)
	require.Len(t, rows, 2)
	assert.Equal(t, `"Wanderlust","","","","","","true","375.00"`, rows[1])
}

func TestExportService_AuditLogs(t *testing.T) {
	f := newFixture(t)

	f.audit.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]auditModel.Log, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, auditModel.CategoryLocks, args[auditModel.FieldCategory])

			return []auditModel.Log{{
				Category: auditModel.CategoryLocks,
				Action:   auditModel.ActionAcquire,
				Details:  types.JSONText(`{"reason":"night audit"}`),
			}}, nil
		})

	body, err := f.svc.Export(context.Background(), service.ResourceAuditLogs, service.Filters{Category: auditModel.CategoryLocks})

	require.NoError(t, err)
	assert.Contains(t, string(body), `"{""reason"":""night audit""}"`)
}

func TestExportService_Errors(t *testing.T) {
	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Export(context.Background(), "rooms", service.Filters{})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)
		f.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := f.svc.Export(context.Background(), service.ResourceBookings, service.Filters{})
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
