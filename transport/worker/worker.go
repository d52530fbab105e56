package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mail"
	"hotel/infras/otel"
	lockService "hotel/internal/domains/systemlock/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const traceFlushTimeout = 5 * time.Second

// Worker runs the background jobs: invoice mails for checked-out bookings and the expired lock sweep.
type Worker struct {
	cfg   *config.Config
	kafka kafka.Client
	mail  mail.Sender
	locks lockService.SystemLock
	otel  otel.Otel
	cron  *cron.Cron
}

func New(cfg *config.Config, kafka kafka.Client, mail mail.Sender, locks lockService.SystemLock, otel otel.Otel) *Worker {
	return &Worker{
		cfg:   cfg,
		kafka: kafka,
		mail:  mail,
		locks: locks,
		otel:  otel,
		cron:  cron.New(),
	}
}

// Run blocks until SIGINT or SIGTERM.
func (w *Worker) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start worker")
	}

	<-ctx.Done()

	log.Info().Msg("Received shutdown signal. Stopping worker.")

	<-w.cron.Stop().Done()

	if err := w.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), traceFlushTimeout)
	defer cancel()

	if err := w.otel.Shutdown(flushCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}

// Start schedules the sweep and starts the consumer; both stop with ctx.
func (w *Worker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.cfg.Worker.LockSweepCron, func() { w.sweepLocks(ctx) }); err != nil {
		return err //nolint:wrapcheck
	}

	w.cron.Start()

	log.Info().Str("schedule", w.cfg.Worker.LockSweepCron).Msg("Lock sweep scheduled")

	go w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.BookingCheckedOut, w.HandleCheckedOut)

	log.Info().Str("topic", w.cfg.Kafka.Topics.BookingCheckedOut).Msg("Checkout consumer started")

	return nil
}

func (w *Worker) sweepLocks(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if _, err := w.locks.Sweep(ctx); err != nil {
		log.Error().Err(err).Msg("lock sweep failed")
	}
}
