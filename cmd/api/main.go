// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

// Command api is the entry point for the Gamelens HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the initial game snapshot (SQLite artifact).
//  4. Connect to Redis.
//  5. Connect to PostgreSQL and run migrations (postgres preset backend only).
//  6. Wire HTTP handlers and start the snapshot watcher.
//  7. Start HTTP server with graceful shutdown.
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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamelens/gamelens/internal/api"
	"github.com/gamelens/gamelens/internal/core/catalog"
	"github.com/gamelens/gamelens/internal/core/preset"
	"github.com/gamelens/gamelens/internal/platform/config"
	"github.com/gamelens/gamelens/internal/platform/constants"
	"github.com/gamelens/gamelens/internal/platform/migration"
	pgstore "github.com/gamelens/gamelens/internal/platform/postgres"
	redisstore "github.com/gamelens/gamelens/internal/platform/redis"
	"github.com/gamelens/gamelens/internal/platform/snapshot"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "gamelens"))
	slog.SetDefault(log)

	log.Info("[Gamelens] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "gamelens"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("preset_backend", cfg.PresetBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Snapshot ───────────────────────────────────────────────────────
	// The snapshot is the sole source of game data. Refusing to start
	// without one beats serving an empty catalog.
	source := snapshot.NewSource(cfg.SnapshotPath, log)
	must(log, source.Load(startupCtx), "load initial snapshot")

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. PostgreSQL (postgres preset backend only) ──────────────────────
	var pool *pgxpool.Pool
	if cfg.PresetBackend == config.PresetBackendPostgres {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckSnapshot: func() error {
			_, serr := source.Current()
			return serr
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	listCache := catalog.NewRedisListCache(rdb, cfg.ListCacheTTL, log)
	catalogService := catalog.NewService(source, listCache, log)
	catalogHandler := catalog.NewHandler(catalogService)

	var presetRepository preset.Repository
	if pool != nil {
		presetRepository = preset.NewPostgresRepository(pool)
	} else {
		presetRepository = preset.NewRedisRepository(rdb, log)
	}
	presetService := preset.NewService(presetRepository, cfg.PublicBaseURL, log)
	presetHandler := preset.NewHandler(presetService)

	// Watch the snapshot artifact for replacement and hot-reload it.
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	watcher := snapshot.NewWatcher(source, cfg.SnapshotPollInterval, log)
	go watcher.Run(watchCtx)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalogHandler,
		Preset:    presetHandler,
	}

	server := api.NewServer(watchCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
