package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/tasks"
)

// BookingNotifier tells the organizer about a confirmed booking. Failures
// never undo a booking.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, b tm.Booking) error
}

func ConfirmationPayload(b tm.Booking) tasks.BookingConfirmedPayload {
	return tasks.BookingConfirmedPayload{
		OwnerID:     b.OwnerID,
		BookingID:   b.ID,
		Email:       strings.TrimSpace(b.Organizer.Email),
		Name:        b.Organizer.Name,
		Destination: b.Destination,
		StartDate:   b.StartDate.String(),
		EndDate:     b.EndDate.String(),
		Travelers:   b.Travelers.Total(),
		Total:       b.Pricing.Total.String(),
		Currency:    b.Pricing.Currency,
	}
}

type mailNotifier struct {
	mail IMailService
}

// NewMailNotifier sends the confirmation inline on the booking request.
func NewMailNotifier(mail IMailService) BookingNotifier {
	return &mailNotifier{mail: mail}
}

func (n *mailNotifier) BookingConfirmed(_ context.Context, b tm.Booking) error {
	p := ConfirmationPayload(b)
	if p.Email == "" {
		return nil
	}
	return n.mail.SendBookingConfirmation(p)
}

// TaskEnqueuer is the part of *asynq.Client the queue notifier needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type queueNotifier struct {
	client TaskEnqueuer
	logger *zap.Logger
}

// NewQueueNotifier hands the confirmation to the asynq worker.
func NewQueueNotifier(client TaskEnqueuer, logger *zap.Logger) BookingNotifier {
	return &queueNotifier{client: client, logger: logger}
}

func (n *queueNotifier) BookingConfirmed(ctx context.Context, b tm.Booking) error {
	p := ConfirmationPayload(b)
	if p.Email == "" {
		return nil
	}
	task, opts, err := tasks.NewBookingConfirmedTask(p)
	if err != nil {
		return err
	}
	info, err := n.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return err
	}
	n.logger.Debug("queued booking confirmation", zap.String("task_id", info.ID), zap.String("queue", info.Queue))
	return nil
}

type noopNotifier struct{}

func NewNoopNotifier() BookingNotifier {
	return noopNotifier{}
}

func (noopNotifier) BookingConfirmed(context.Context, tm.Booking) error {
	return nil
}
