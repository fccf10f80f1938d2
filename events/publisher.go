package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hanksha/club-booking-backend/booking"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	QueueNotifications = "notifications"

	maxRetry    = 5
	taskTimeout = 30 * time.Second
)

// Enqueuer is the part of asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher turns booking events into asynq tasks on the notifications
// queue. It only enqueues; delivery happens in the Worker.
type Publisher struct {
	client Enqueuer
}

func NewPublisher(client Enqueuer) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, event booking.BookingCreated) error {
	return p.enqueue(ctx, booking.TypeBookingCreated, event)
}

func (p *Publisher) PublishBookingStatusUpdated(ctx context.Context, event booking.BookingStatusUpdated) error {
	return p.enqueue(ctx, booking.TypeBookingStatusUpdated, event)
}

func (p *Publisher) enqueue(ctx context.Context, taskType string, event any) error {
	payload, err := json.Marshal(event)

	if err != nil {
		return fmt.Errorf("failed to marshal %v payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, payload)

	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(maxRetry),
		asynq.Timeout(taskTimeout),
	)

	if err != nil {
		return fmt.Errorf("failed to enqueue %v task: %w", taskType, err)
	}

	return nil
}
