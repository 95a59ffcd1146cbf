// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the bookstore HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the relational store (SQLite file or PostgreSQL pool).
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/bookstore/internal/api"
	"github.com/taibuivan/bookstore/internal/platform/config"
	"github.com/taibuivan/bookstore/internal/platform/constants"
	"github.com/taibuivan/bookstore/internal/platform/database"
	"github.com/taibuivan/bookstore/internal/platform/metrics"
	"github.com/taibuivan/bookstore/internal/platform/middleware"
	"github.com/taibuivan/bookstore/internal/platform/migration"
	pgstore "github.com/taibuivan/bookstore/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
	)

	// Root context for startup, so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3 & 4. Database + Migrations ──────────────────────────────────────
	db, closeDB := openDatabase(startupCtx, cfg, log)
	defer closeDB()

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	var collector *metrics.Metrics
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	handlers, err := api.NewHandlers(cfg, db, collector, log)
	must(log, err, "wire handlers")

	runCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
		go limiter.Run(runCtx)
	}

	server := api.NewServer(cfg, log, handlers, api.Options{
		Metrics:     collector,
		RateLimiter: limiter,
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// openDatabase connects to the configured store and migrates it.
// The returned func releases the connection.
func openDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*database.DB, func()) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")

		must(log, migration.RunUp(database.Postgres, cfg.DatabaseURL, log), "run migrations")

		db := pgstore.OpenDB(pool)
		return db, func() {
			log.Info("closing postgres pool")
			db.Close()
			pool.Close()
		}

	default:
		db, err := database.OpenSQLite(ctx, cfg.DatabasePath, log)
		must(log, err, "open sqlite")

		must(log, migration.RunUp(database.SQLite, cfg.DatabasePath, log), "run migrations")

		return db, func() {
			log.Info("closing sqlite database")
			if err := db.Close(); err != nil {
				log.Error("sqlite close error", slog.Any("error", err))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
