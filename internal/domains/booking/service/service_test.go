package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	kafkaInfra "hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/metrics"
	otelMocks "hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	auditMocks "hotel/internal/domains/audit/service/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	folioMocks "hotel/internal/domains/folio/mocks"
	folioModel "hotel/internal/domains/folio/model"
	housekeepingMocks "hotel/internal/domains/housekeeping/mocks"
	housekeepingModel "hotel/internal/domains/housekeeping/model"
	lockModel "hotel/internal/domains/systemlock/model"
	lockMocks "hotel/internal/domains/systemlock/service/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc          service.Booking
	repo         *bookingMocks.MockBooking
	folio        *folioMocks.MockFolio
	housekeeping *housekeepingMocks.MockHousekeeping
	locks        *lockMocks.MockSystemLock
	audit        *auditMocks.MockAudit
	tx           *pgMocks.MockTransactor
	kafka        *kafkaMocks.MockClient
	metrics      *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Metrics.Namespace = "test"
	cfg.Kafka.Topics.BookingCheckedOut = "booking.checked_out"

	f := fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		folio:        folioMocks.NewMockFolio(ctrl),
		housekeeping: housekeepingMocks.NewMockHousekeeping(ctrl),
		locks:        lockMocks.NewMockSystemLock(ctrl),
		audit:        auditMocks.NewMockAudit(ctrl),
		tx:           pgMocks.NewMockTransactor(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		metrics:      metrics.New(cfg),
	}
	f.svc = service.New(f.repo, f.folio, f.housekeeping, f.locks, f.audit, f.tx, f.kafka, cfg, otelMocks.NewOtel(), f.metrics)

	return f
}

func (f fixture) runTx() {
	f.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	})
}

func strPtr(s string) *string {
	return &s
}

func checkedIn(billID *string) model.Booking {
	return model.Booking{
		ID:             "b-1",
		Reference:      "BK-0001",
		GuestName:      "Ayu",
		GuestEmail:     "ayu@example.com",
		Status:         model.StatusCheckedIn,
		CheckoutBillID: billID,
		TotalAmount:    decimal.NewFromInt(900),
		PaidAmount:     decimal.NewFromInt(900),
	}
}

var bookingRooms = []model.Room{
	{ID: "br-1", BookingID: "b-1", RoomID: "r-1", Name: "Villa Kamboja"},
	{ID: "br-2", BookingID: "b-1", RoomID: "r-2", Name: "Deluxe 204"},
}

func TestBookingService_CheckOut(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(f fixture, published chan<- model.CheckedOutEvent)
		wantCode   int
		wantResult string
	}{
		{
			name: "blocked without a checkout bill",
			setupMock: func(f fixture, _ chan<- model.CheckedOutEvent) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(nil), nil)
			},
			wantCode:   http.StatusUnprocessableEntity,
			wantResult: metrics.ResultRejected,
		},
		{
			name: "blocked by a folio lock",
			setupMock: func(f fixture, _ chan<- model.CheckedOutEvent) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(strPtr("bill-1")), nil)
				f.repo.EXPECT().Rooms(gomock.Any(), "b-1").Return(bookingRooms, nil)
				f.locks.EXPECT().FindBlocking(gomock.Any(), []lockModel.Resource{
					{Type: lockModel.ResourceFolio, ID: "b-1"},
					{Type: lockModel.ResourceRoom, ID: "r-1"},
					{Type: lockModel.ResourceRoom, ID: "r-2"},
				}).Return([]lockModel.SystemLock{
					{ResourceType: lockModel.ResourceFolio, ResourceID: "b-1", LockedBy: "cashier", Reason: "night audit", Active: true},
				}, nil)
			},
			wantCode:   http.StatusConflict,
			wantResult: metrics.ResultBlocked,
		},
		{
			name: "not checked in yet",
			setupMock: func(f fixture, _ chan<- model.CheckedOutEvent) {
				booking := checkedIn(strPtr("bill-1"))
				booking.Status = model.StatusConfirmed
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantCode:   http.StatusUnprocessableEntity,
			wantResult: metrics.ResultRejected,
		},
		{
			name: "archived booking",
			setupMock: func(f fixture, _ chan<- model.CheckedOutEvent) {
				booking := checkedIn(strPtr("bill-1"))
				booking.Archived = true
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantCode:   http.StatusUnprocessableEntity,
			wantResult: metrics.ResultRejected,
		},
		{
			name: "transaction failure leaves nothing published",
			setupMock: func(f fixture, _ chan<- model.CheckedOutEvent) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(strPtr("bill-1")), nil)
				f.repo.EXPECT().Rooms(gomock.Any(), "b-1").Return(bookingRooms, nil)
				f.locks.EXPECT().FindBlocking(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.runTx()
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
			wantCode:   http.StatusInternalServerError,
			wantResult: metrics.ResultError,
		},
		{
			name: "checks out and queues housekeeping",
			setupMock: func(f fixture, published chan<- model.CheckedOutEvent) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(strPtr("bill-1")), nil)
				f.repo.EXPECT().Rooms(gomock.Any(), "b-1").Return(bookingRooms, nil)
				f.locks.EXPECT().FindBlocking(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.runTx()
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
						assert.Equal(t, "late breakfast", fields[model.FieldCheckoutNotes])
						assert.NotNil(t, fields[model.FieldCheckedOutAt])

						return nil
					})
				f.housekeeping.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, tasks []housekeepingModel.Task) error {
						require.Len(t, tasks, 2)
						assert.Equal(t, "r-1", tasks[0].RoomID)
						assert.Equal(t, housekeepingModel.StatusPending, tasks[1].Status)

						return nil
					})
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.checked_out", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
						published <- messages[0].Value.(model.CheckedOutEvent)

						return nil
					})
			},
			wantResult: metrics.ResultSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			published := make(chan model.CheckedOutEvent, 1)
			tt.setupMock(f, published)

			res, err := f.svc.CheckOut(context.Background(), "b-1", dto.CheckOutRequest{Notes: "late breakfast"})

			assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Checkout.WithLabelValues(tt.wantResult)))

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusCheckedOut, res.Status)
			assert.NotNil(t, res.CheckedOutAt)

			select {
			case event := <-published:
				assert.Equal(t, "b-1", event.BookingID)
				assert.Equal(t, "bill-1", event.CheckoutBillID)
				assert.Equal(t, []string{"r-1", "r-2"}, event.RoomIDs)
			case <-time.After(time.Second):
				t.Fatal("check-out event was not published")
			}
		})
	}
}

func TestBookingService_CheckOut_MissingBillKeepsStatus(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(strPtr("")), nil)

	_, err := f.svc.CheckOut(context.Background(), "b-1", dto.CheckOutRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "checkout bill must be generated before check-out")
}

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		call     func(svc service.Booking) error
		wantTo   string
		wantCode int
	}{
		{name: "confirm pending", from: model.StatusPending, call: func(svc service.Booking) error { return svc.Confirm(context.Background(), "b-1") }, wantTo: model.StatusConfirmed},
		{name: "check in confirmed", from: model.StatusConfirmed, call: func(svc service.Booking) error { return svc.CheckIn(context.Background(), "b-1") }, wantTo: model.StatusCheckedIn},
		{name: "cancel confirmed", from: model.StatusConfirmed, call: func(svc service.Booking) error { return svc.Cancel(context.Background(), "b-1") }, wantTo: model.StatusCancelled},
		{name: "check in pending", from: model.StatusPending, call: func(svc service.Booking) error { return svc.CheckIn(context.Background(), "b-1") }, wantCode: http.StatusUnprocessableEntity},
		{name: "cancel checked out", from: model.StatusCheckedOut, call: func(svc service.Booking) error { return svc.Cancel(context.Background(), "b-1") }, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", Status: tt.from}, nil)

			if tt.wantCode == 0 {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.wantTo, fields[model.FieldStatus])

						if tt.wantTo == model.StatusCheckedIn {
							assert.Contains(t, fields, model.FieldCheckedInAt)
						}

						return nil
					})
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := tt.call(f.svc)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Archive(t *testing.T) {
	t.Run("refuses an open stay", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", Status: model.StatusCheckedIn}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(f.svc.Archive(context.Background(), "b-1")))
	})

	t.Run("archives a checked-out stay", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", Status: model.StatusCheckedOut}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Archive(context.Background(), "b-1"))
	})

	t.Run("archived bookings reject updates", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", Archived: true}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateBookingRequest{GuestPhone: "0812"}, "b-1")
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestBookingService_Submit(t *testing.T) {
	checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	t.Run("stores booking rooms and add-ons together", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Contains(t, booking.Reference, "BK-")

				return nil
			})
		f.repo.EXPECT().InsertRoomsTx(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
		f.folio.EXPECT().InsertAddonsTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, addons []folioModel.BookingAddon) error {
				require.Len(t, addons, 1)
				assert.Equal(t, 1, addons[0].Quantity)

				return nil
			})

		res, err := f.svc.Submit(context.Background(), dto.Submission{
			GuestName: "Ayu",
			CheckIn:   checkIn,
			CheckOut:  checkIn.Add(48 * time.Hour),
			Total:     decimal.NewFromInt(400),
			Rooms:     []model.Room{{RoomID: "r-1", Name: "Deluxe 204", NightlyRate: decimal.NewFromInt(200)}},
			Addons:    []folioModel.BookingAddon{{AddonID: "a-1", Name: "Breakfast", Quantity: 0}},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
		assert.Len(t, res.Rooms, 1)
	})

	t.Run("needs a room", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(context.Background(), dto.Submission{GuestName: "Ayu"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
