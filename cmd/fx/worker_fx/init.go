package worker_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/internal/infra"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/services"
	"tripwise/internal/worker"
	mem "tripwise/pkg/memcache"
)

var Module = fx.Options(
	fx.Invoke(registerSweeper),
	fx.Invoke(registerConfirmationWorker))

func registerSweeper(
	lc fx.Lifecycle,
	cfg *config.Config,
	bookings services.BookingServiceInterface,
	drafts mem.Store[tm.DraftSession],
	logger *zap.Logger,
) error {
	sweeper, err := worker.NewSweeper(cfg.ExpirySweepSpec, bookings, drafts, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()
			logger.Info("expiry sweeper started", zap.String("spec", cfg.ExpirySweepSpec))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop(ctx)
			return nil
		},
	})
	return nil
}

// registerConfirmationWorker runs the mail worker in-process when
// confirmations go through the queue.
func registerConfirmationWorker(lc fx.Lifecycle, cfg *config.Config, mail services.IMailService, logger *zap.Logger) {
	if cfg.NotifyDriver != config.NotifyQueue {
		return
	}

	srv := worker.NewConfirmationServer(
		infra.AsynqRedisOpt(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB),
		cfg.WorkerConcurrency,
		logger)
	mux := worker.NewConfirmationMux(mail, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return srv.Start(mux)
		},
		OnStop: func(context.Context) error {
			srv.Shutdown()
			return nil
		},
	})
}
