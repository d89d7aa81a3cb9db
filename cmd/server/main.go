// Command server is the entry point for the minifeed backend.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sylee999/minifeed/internal/api"
	"github.com/sylee999/minifeed/internal/infrastructure/cache"
	"github.com/sylee999/minifeed/internal/infrastructure/config"
	"github.com/sylee999/minifeed/internal/infrastructure/store"
	"github.com/sylee999/minifeed/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	storeClient, err := store.NewClient(cfg.Store.BaseURL, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialise store client")
	}

	// The feed cache is optional: without Redis the service still works,
	// every popular feed just recomputes from the store.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.Connect(ctx, cache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			logg.Warn().Err(err).Msg("redis unavailable, feed cache disabled")
			rdb = nil
		}
	}

	e := api.NewRouter(storeClient, rdb, api.RouterConfig{
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		FeedCacheTTL: cfg.Redis.CacheTTL,
	}, logg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("http server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("store", cfg.Store.BaseURL).Msg("minifeed started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logg.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("server shutdown error")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
