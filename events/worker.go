package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hanksha/club-booking-backend/booking"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=worker.go -destination=mocks/worker_mock.go -package=mocks

// Notifier delivers booking events to the outside world.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, event booking.BookingCreated) error
	NotifyBookingStatusUpdated(ctx context.Context, event booking.BookingStatusUpdated) error
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisOpt asynq.RedisConnOpt, concurrency int, notifier Notifier) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueNotifications: 1,
		},
	})

	return &Worker{server: server, mux: NewServeMux(notifier)}
}

// Start runs the worker in background goroutines.
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func NewServeMux(notifier Notifier) *asynq.ServeMux {
	logger := slog.Default().With("component", "events")

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeBookingCreated, handleBookingCreated(notifier, logger))
	mux.HandleFunc(booking.TypeBookingStatusUpdated, handleBookingStatusUpdated(notifier, logger))

	return mux
}

func handleBookingCreated(notifier Notifier, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event booking.BookingCreated

		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			logger.Error("invalid booking created payload", "err", err)
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := notifier.NotifyBookingCreated(ctx, event); err != nil {
			logger.Warn("failed to notify booking created", "bookingId", event.Booking.ID, "err", err)
			return err
		}

		return nil
	}
}

func handleBookingStatusUpdated(notifier Notifier, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event booking.BookingStatusUpdated

		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			logger.Error("invalid booking status payload", "err", err)
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := notifier.NotifyBookingStatusUpdated(ctx, event); err != nil {
			logger.Warn("failed to notify booking status", "bookingId", event.BookingID, "status", event.NewStatus, "err", err)
			return err
		}

		return nil
	}
}
