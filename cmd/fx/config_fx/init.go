package config_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/config"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideClock,
	provideLocation)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideClock() utils.Clock {
	return time.Now
}

func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadLocation(cfg.Timezone)
}
