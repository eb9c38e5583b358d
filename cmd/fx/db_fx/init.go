package db_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/internal/infra"
	"tripwise/internal/repositories"
)

var Module = fx.Provide(
	provideTripStore)

const connectTimeout = 10 * time.Second

func provideTripStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.TripStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	logger.Info("opening trip store", zap.String("driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.StoreMemory:
		return repositories.NewMemoryTripStore(), nil

	case config.StorePostgres:
		db, err := infra.InitPostgresql(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		lc.Append(fx.StopHook(func() {
			infra.ClosePostgresql(db, logger)
		}))
		return repositories.NewPostgresTripStore(db)

	case config.StoreRedis:
		client, err := infra.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		lc.Append(fx.StopHook(client.Close))
		return repositories.NewRedisTripStore(client), nil

	case config.StoreMongo:
		client, err := infra.InitMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		lc.Append(fx.StopHook(client.Disconnect))
		return repositories.NewMongoTripStore(client.Database(cfg.MongoDatabase)), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
