package booking_fx

import (
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/internal/infra"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideBookingRepo,
	provideNotifier,
	provideBookingService,
	provideDraftService)

func provideBookingRepo(store repositories.TripStore, logger *zap.Logger) repositories.BookingRepositoryInterface {
	return repositories.NewBookingRepository(store, logger)
}

func provideNotifier(lc fx.Lifecycle, cfg *config.Config, mail services.IMailService, logger *zap.Logger) services.BookingNotifier {
	switch cfg.NotifyDriver {
	case config.NotifySMTP:
		return services.NewMailNotifier(mail)
	case config.NotifyQueue:
		client := asynq.NewClient(infra.AsynqRedisOpt(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB))
		lc.Append(fx.StopHook(client.Close))
		return services.NewQueueNotifier(client, logger)
	default:
		return services.NewNoopNotifier()
	}
}

func provideBookingService(
	bookingRepo repositories.BookingRepositoryInterface,
	itinerary services.ItineraryServiceInterface,
	notifier services.BookingNotifier,
	clock utils.Clock,
	loc *time.Location,
	logger *zap.Logger,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, itinerary, notifier, clock, loc, logger)
}

func provideDraftService(
	cfg *config.Config,
	sessions mem.Store[tm.DraftSession],
	itinerary services.ItineraryServiceInterface,
	clock utils.Clock,
	loc *time.Location,
) services.DraftServiceInterface {
	return services.NewDraftService(sessions, itinerary, clock, loc, cfg.DraftTTL())
}
