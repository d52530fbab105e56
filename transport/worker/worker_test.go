package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	mailMocks "hotel/infras/mail/mocks"
	otelMocks "hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	lockMocks "hotel/internal/domains/systemlock/service/mocks"

	"github.com/robfig/cron/v3"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWorker(t *testing.T, outbox *mailMocks.Outbox) (*Worker, *kafkaMocks.MockClient, *lockMocks.MockSystemLock) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Billing.Currency = "IDR"
	cfg.Worker.LockSweepCron = "@every 1m"
	cfg.Kafka.Topics.BookingCheckedOut = "booking.checked_out"

	client := kafkaMocks.NewMockClient(ctrl)
	locks := lockMocks.NewMockSystemLock(ctrl)

	return &Worker{
		cfg:   cfg,
		kafka: client,
		mail:  outbox,
		locks: locks,
		otel:  otelMocks.NewOtel(),
		cron:  cron.New(),
	}, client, locks
}

func checkedOutMessage(t *testing.T, event bookingModel.CheckedOutEvent) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafkaGo.Message{Topic: "booking.checked_out", Key: []byte(event.BookingID), Value: value}
}

func TestWorker_HandleCheckedOut(t *testing.T) {
	event := bookingModel.CheckedOutEvent{
		BookingID:      "b-1",
		Reference:      "BK-0001",
		GuestName:      "Ayu",
		GuestEmail:     "ayu@example.com",
		CheckoutBillID: "bill-1",
		TotalAmount:    decimal.NewFromInt(300),
		PaidAmount:     decimal.NewFromInt(100),
		CheckedOutAt:   time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		message  func(t *testing.T) kafkaGo.Message
		sendErr  error
		wantErr  bool
		wantSent int
	}{
		{
			name:     "sends the invoice",
			message:  func(t *testing.T) kafkaGo.Message { return checkedOutMessage(t, event) },
			wantSent: 1,
		},
		{
			name: "no guest e-mail",
			message: func(t *testing.T) kafkaGo.Message {
				noMail := event
				noMail.GuestEmail = ""

				return checkedOutMessage(t, noMail)
			},
		},
		{
			name:    "undecodable payload is acknowledged",
			message: func(*testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{")} },
		},
		{
			name:    "smtp failure is retried",
			message: func(t *testing.T) kafkaGo.Message { return checkedOutMessage(t, event) },
			sendErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outbox := mailMocks.NewOutbox()
			outbox.Err = tt.sendErr

			w, _, _ := newWorker(t, outbox)

			err := w.HandleCheckedOut(context.Background(), tt.message(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, outbox.Sent, tt.wantSent)

			if tt.wantSent > 0 {
				sent := outbox.Sent[0]

				assert.Equal(t, []string{"ayu@example.com"}, sent.To)
				assert.Contains(t, sent.Subject, "BK-0001")
				assert.Contains(t, sent.HTML, "IDR 200.00")
				assert.Contains(t, sent.HTML, "bill-1")
			}
		})
	}
}

func TestRenderInvoice_EscapesGuestName(t *testing.T) {
	body, err := renderInvoice(bookingModel.CheckedOutEvent{
		GuestName:   "<script>x</script>",
		TotalAmount: decimal.NewFromInt(10),
	}, "USD")

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "USD 10.00")
}

func TestWorker_Start(t *testing.T) {
	w, client, locks := newWorker(t, mailMocks.NewOutbox())

	consumed := make(chan string, 1)
	client.EXPECT().Consume(gomock.Any(), gomock.Any(), "booking.checked_out", gomock.Any()).
		Do(func(_ context.Context, _, topic string, _ any) { consumed <- topic })
	locks.EXPECT().Sweep(gomock.Any()).Return(int64(0), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.cron.Stop()

	select {
	case topic := <-consumed:
		assert.Equal(t, "booking.checked_out", topic)
	case <-time.After(time.Second):
		t.Fatal("consumer was not started")
	}

	assert.Len(t, w.cron.Entries(), 1)
}

func TestWorker_SweepLocks(t *testing.T) {
	w, _, locks := newWorker(t, mailMocks.NewOutbox())

	locks.EXPECT().Sweep(gomock.Any()).Return(int64(0), errors.New("db down"))
	w.sweepLocks(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// cancelled context skips the sweep; gomock fails on an unexpected call
	w.sweepLocks(ctx)
}

func TestWorker_Start_InvalidSchedule(t *testing.T) {
	w, _, _ := newWorker(t, mailMocks.NewOutbox())
	w.cfg.Worker.LockSweepCron = "not a schedule"

	assert.Error(t, w.Start(context.Background()))
}
