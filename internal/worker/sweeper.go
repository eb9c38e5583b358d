package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"
)

// Sweeper runs the periodic housekeeping jobs: persisting completed status
// for bookings whose trip has ended, and dropping expired wizard drafts.
type Sweeper struct {
	cron     *cron.Cron
	bookings services.BookingServiceInterface
	drafts   mem.Store[tm.DraftSession]
	logger   *zap.Logger
	timeout  time.Duration
}

func NewSweeper(
	spec string,
	bookings services.BookingServiceInterface,
	drafts mem.Store[tm.DraftSession],
	logger *zap.Logger,
) (*Sweeper, error) {
	s := &Sweeper{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		bookings: bookings,
		drafts:   drafts,
		logger:   logger,
		timeout:  5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completed, err := s.bookings.CompleteExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Int("completed", completed), zap.Error(err))
	} else if completed > 0 {
		s.logger.Info("expiry sweep completed bookings", zap.Int("completed", completed))
	}

	if dropped := s.drafts.Sweep(); dropped > 0 {
		s.logger.Debug("dropped expired drafts", zap.Int("count", dropped))
	}
}
