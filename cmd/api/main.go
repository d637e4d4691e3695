// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Bibble content administration API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Serve until a signal arrives, then shut down gracefully.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/bibble/internal/api"
	"github.com/taibuivan/bibble/internal/bulkimport"
	"github.com/taibuivan/bibble/internal/catalog"
	"github.com/taibuivan/bibble/internal/language"
	"github.com/taibuivan/bibble/internal/platform/config"
	"github.com/taibuivan/bibble/internal/platform/constants"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/internal/platform/migration"
	pgstore "github.com/taibuivan/bibble/internal/platform/postgres"
	redisstore "github.com/taibuivan/bibble/internal/platform/redis"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/internal/users"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server_stopped_with_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Startup gets a deadline so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(ctx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, pgstore.Options{
		DSN:              cfg.DatabaseURL,
		MaxConns:         cfg.DatabaseMaxConns,
		StatementTimeout: cfg.StatementTimeout,
	}, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, redisstore.Options{
		URL:       cfg.RedisURL,
		PoolSize:  cfg.RedisPoolSize,
		OpTimeout: cfg.RedisOpTimeout,
	}, log)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	schema, err := migration.Up(cfg.DatabaseURL, cfg.MigrationPath, log)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("schema_ready", slog.Uint64("version", uint64(schema.To)))

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer, constants.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("initialize token service: %w", err)
	}

	m := metrics.New()

	languageService := language.NewService(
		language.NewPostgresRepository(pool),
		language.NewRedisCache(rdb, cfg.LanguageCacheTTL),
		m, log,
	)
	catalogService := catalog.NewService(catalog.NewPostgresRepository(pool), languageService, m, log)
	importService := bulkimport.NewService(bulkimport.NewPostgresTransactor(pool), languageService, m, log)
	userService := users.NewService(users.NewPostgresRepository(pool), tokens, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	server := api.NewServer(ctx, cfg, log, tokens, m, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Users:     users.NewHandler(userService),
		Catalog:   catalog.NewHandler(catalogService),
		Languages: language.NewHandler(languageService),
		Imports:   bulkimport.NewHandler(importService),
	})

	// ── 7. Serve & Graceful Shutdown ──────────────────────────────────────
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	return group.Wait()
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
