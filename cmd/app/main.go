package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripwise/cmd/fx/booking_fx"
	"tripwise/cmd/fx/config_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/itinerary_fx"
	"tripwise/cmd/fx/mail_fx"
	"tripwise/cmd/fx/memcache_fx"
	"tripwise/cmd/fx/package_fx"
	"tripwise/cmd/fx/worker_fx"
	"tripwise/internal/api/controllers"
	"tripwise/internal/config"
	"tripwise/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		mail_fx.Module,
		booking_fx.Module,
		package_fx.Module,
		controllers_fx.Module,
		worker_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouteControllers struct {
	fx.In

	Itinerary *controllers.ItineraryController
	Draft     *controllers.DraftController
	Booking   *controllers.BookingController
	Package   *controllers.PackageController
	Health    *controllers.HealthController
}

func ProvideRouter(cfg *config.Config, logger *zap.Logger, rc RouteControllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, cfg, logger, rc)

	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, logger *zap.Logger, rc RouteControllers) {
	auth := middleware.JWTAuthMiddleware([]byte(cfg.JWTSecret))
	bookingLimiter := middleware.NewOwnerRateLimiter(cfg.MaxBookingsPerMin)

	r.GET("/health", rc.Health.Health)
	r.GET("/packages", rc.Package.ListPackagesHandler)
	r.POST("/itineraries/synthesize", rc.Itinerary.SynthesizeItinerary)
	r.POST("/pricing/quote", rc.Itinerary.QuotePrice)

	draftGroup := r.Group("/drafts", auth)
	draftGroup.POST("", rc.Draft.CreateDraft)
	draftGroup.GET("/:draftId", rc.Draft.GetDraft)
	draftGroup.PUT("/:draftId/steps/:step", rc.Draft.ApplyStep)
	draftGroup.PUT("/:draftId/itinerary/days/:day", rc.Draft.EditDay)

	bookingGroup := r.Group("/bookings", auth)
	bookingGroup.POST("", bookingLimiter.Middleware(logger), rc.Booking.CreateBooking)
	bookingGroup.GET("", rc.Booking.ListBookings)
	bookingGroup.POST("/reconcile", rc.Booking.Reconcile)
	bookingGroup.GET("/:bookingId", rc.Booking.GetBooking)
	bookingGroup.POST("/:bookingId/cancel", rc.Booking.CancelBooking)
}
