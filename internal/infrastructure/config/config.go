package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/sylee999/minifeed/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session cookies. Required.
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Store StoreConfig
	Redis RedisConfig
}

type StoreConfig struct {
	// BaseURL is the remote REST store all persistence is delegated to.
	// Required; resolved exactly once at startup.
	BaseURL string `env:"STORE_BASE_URL"`
}

type RedisConfig struct {
	// Addr enables the popular-feed cache when non-empty. The cache is
	// best-effort: the service runs without it.
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB, default=0"`
	CacheTTL time.Duration `env:"FEED_CACHE_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values surface as a configuration error so startup can
// fail early instead of resolving configuration per-call.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store.BaseURL == "" {
		return nil, domain.NewConfigurationError("config: STORE_BASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, domain.NewConfigurationError("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
