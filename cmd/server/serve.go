package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Priya8975/travel-agency/internal/api"
	"github.com/Priya8975/travel-agency/internal/metrics"
	"github.com/Priya8975/travel-agency/internal/ratelimit"
	"github.com/Priya8975/travel-agency/internal/render"
	"github.com/Priya8975/travel-agency/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Reset and seed the database, then serve HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Initialize PostgreSQL
	pgStore, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		return err
	}
	defer pgStore.Close()
	logger.Info("connected to PostgreSQL")

	// Destructive on purpose: the catalog is rebuilt from the embedded seed
	// on every start and existing subscribers are dropped.
	if err := pgStore.ResetAndSeed(ctx); err != nil {
		logger.Error("failed to reset and seed database", "error", err)
		return err
	}
	logger.Warn("database reset and seeded; previous subscribers were erased")

	// Optional Redis for subscribe rate limiting
	var limiter *ratelimit.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := ratelimit.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			return err
		}
		defer redisClient.Close()
		limiter = ratelimit.New(redisClient, cfg.SubscribeRateLimit, cfg.SubscribeRateWindow, logger)
		logger.Info("subscribe rate limiting enabled",
			"limit", cfg.SubscribeRateLimit,
			"window", cfg.SubscribeRateWindow.String(),
		)
	} else {
		logger.Info("REDIS_URL not set; subscribe rate limiting disabled")
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		return err
	}

	router := api.NewRouter(pgStore, renderer, limiter, metrics.New(), logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
