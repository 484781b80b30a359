package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/config"
	"github.com/tacticusops/raid-dashboard/internal/handlers"
	"github.com/tacticusops/raid-dashboard/internal/ratelimit"
	"github.com/tacticusops/raid-dashboard/internal/store"
	"github.com/tacticusops/raid-dashboard/internal/tacticus"
)

// @title Tacticus Raid Dashboard API
// @version 1.0
// @description Guild raid damage reports backed by the public Tacticus API
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid REDIS_URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		sugar.Warnw("Redis unreachable at startup, cache degrades to direct fetches", "error", err)
	}
	cancel()

	client := tacticus.New(tacticus.Config{
		BaseURL: cfg.TacticusAPIURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  logger,
	})

	h := handlers.New(handlers.Config{
		Tacticus: client,
		Store:    store.New(rdb, cfg.CacheTTL, logger),
		Logger:   logger,
	})

	router := h.Router(handlers.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    ratelimit.New(float64(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "upstream", cfg.TacticusAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
	if err := rdb.Close(); err != nil {
		sugar.Warnw("Redis close failed", "error", err)
	}
	sugar.Info("Server stopped")
}
