package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret is the base64-encoded HMAC signing key. Mandatory: the
	// service refuses to start without it.
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTLMillis is the token validity window in milliseconds.
	TokenTTLMillis int64 `env:"JWT_EXPIRATION_MS, default=86400000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tool_catalog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SchedulerConfig struct {
	// PurgeCron is when expired proposals are removed (daily at 21:00).
	PurgeCron string `env:"PURGE_CRON,  default=0 21 * * *"`
	// RemindCron is when pending-proposal reminders go out (daily at 10:00).
	RemindCron string `env:"REMIND_CRON, default=0 10 * * *"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("load config: JWT_SECRET is required")
	}
	return &cfg, nil
}
