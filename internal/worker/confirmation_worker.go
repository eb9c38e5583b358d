package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"tripwise/internal/services"
	"tripwise/internal/tasks"
)

// NewConfirmationServer builds the asynq server that delivers booking
// confirmation mails queued by the queue notifier.
func NewConfirmationServer(redisOpt asynq.RedisConnOpt, concurrency int, logger *zap.Logger) *asynq.Server {
	return asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
}

func NewConfirmationMux(mail services.IMailService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, HandleBookingConfirmed(mail, logger))
	return mux
}

func HandleBookingConfirmed(mail services.IMailService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingConfirmed(task)
		if err != nil {
			logger.Error("invalid booking confirmation payload", zap.Error(err))
			// a malformed payload never succeeds on retry
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := mail.SendBookingConfirmation(p); err != nil {
			logger.Warn("booking confirmation mail failed",
				zap.String("booking_id", p.BookingID),
				zap.Error(err))
			return err
		}

		logger.Info("booking confirmation sent", zap.String("booking_id", p.BookingID))
		return nil
	}
}
