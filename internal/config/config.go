package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
)

// Notification drivers.
const (
	NotifyNone  = "none"
	NotifySMTP  = "smtp"
	NotifyQueue = "queue"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Timezone string `mapstructure:"TIMEZONE"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxBookingsPerMin int    `mapstructure:"MAX_BOOKINGS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	ItinerarySeed   int64  `mapstructure:"ITINERARY_SEED"`
	DraftTTLMinutes int    `mapstructure:"DRAFT_TTL_MINUTES"`
	ExpirySweepSpec string `mapstructure:"EXPIRY_SWEEP_SPEC"`

	NotifyDriver      string `mapstructure:"NOTIFY_DRIVER"`
	SMTPHost          string `mapstructure:"SMTP_HOST"`
	SMTPPort          int    `mapstructure:"SMTP_PORT"`
	SMTPUsername      string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword      string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom          string `mapstructure:"SMTP_FROM"`
	SMTPFromName      string `mapstructure:"SMTP_FROM_NAME"`
	SMTPUseSSL        bool   `mapstructure:"SMTP_USE_SSL"`
	SMTPRequireTLS    bool   `mapstructure:"SMTP_REQUIRE_TLS"`
	AppBaseURL        string `mapstructure:"APP_BASE_URL"`
	WorkerConcurrency int    `mapstructure:"WORKER_CONCURRENCY"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLMinutes) * time.Minute
}

var defaults = map[string]interface{}{
	"APP_PORT":             "8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"TIMEZONE":             "Asia/Kolkata",
	"STORE_DRIVER":         StoreMemory,
	"POSTGRES_URL":         "",
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"REDIS_QUEUE_DB":       1,
	"MONGO_URI":            "mongodb://localhost:27017",
	"MONGO_DATABASE":       "tripwise",
	"JWT_SECRET":           "",
	"MAX_BOOKINGS_PER_MIN": 10,
	"CORS_ORIGINS":         "*",
	"ITINERARY_SEED":       0,
	"DRAFT_TTL_MINUTES":    60,
	"EXPIRY_SWEEP_SPEC":    "@hourly",
	"NOTIFY_DRIVER":        NotifyNone,
	"SMTP_HOST":            "smtp.gmail.com",
	"SMTP_PORT":            587,
	"SMTP_USERNAME":        "",
	"SMTP_PASSWORD":        "",
	"SMTP_FROM":            "",
	"SMTP_FROM_NAME":       "Tripwise",
	"SMTP_USE_SSL":         false,
	"SMTP_REQUIRE_TLS":     true,
	"APP_BASE_URL":         "",
	"WORKER_CONCURRENCY":   5,
}

// Load reads .env (if present), then config.yaml from . or ./config (if
// present), then the environment. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the selected drivers depend on.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreRedis, StoreMongo:
	case StorePostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required for STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.NotifyDriver {
	case NotifyNone, NotifyQueue:
	case NotifySMTP:
		if c.SMTPFrom == "" {
			return fmt.Errorf("SMTP_FROM is required for NOTIFY_DRIVER=%s", c.NotifyDriver)
		}
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.NotifyDriver)
	}

	if c.JWTSecret == "" && c.IsProduction() {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.DraftTTLMinutes <= 0 {
		return fmt.Errorf("DRAFT_TTL_MINUTES must be positive")
	}
	if c.MaxBookingsPerMin <= 0 {
		return fmt.Errorf("MAX_BOOKINGS_PER_MIN must be positive")
	}
	return nil
}
