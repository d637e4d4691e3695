// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package migration applies the SQL files under data/migrations with
golang-migrate.

The API calls [Up] at startup so the content tables exist before the first
request. A dirty schema (a migration that failed halfway) stops the process;
fix it by hand and force the version with the migrate CLI.
*/
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrDirty is returned when the schema is marked dirty.
var ErrDirty = errors.New("migration: schema is dirty")

// Result describes the schema version before and after a run.
type Result struct {
	From uint
	To   uint
}

// Changed reports whether the run applied anything.
func (r Result) Changed() bool { return r.From != r.To }

// Up applies every pending migration in dir.
func Up(dsn, dir string, logger *slog.Logger) (Result, error) {
	return apply(dsn, dir, logger, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// Down rolls back steps migrations.
func Down(dsn, dir string, steps int, logger *slog.Logger) (Result, error) {
	if steps < 1 {
		return Result{}, fmt.Errorf("migration: steps must be positive, got %d", steps)
	}
	return apply(dsn, dir, logger, "down", func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

func apply(dsn, dir string, logger *slog.Logger, direction string, step func(*migrate.Migrate) error) (Result, error) {
	m, err := migrate.New("file://"+dir, PgxURL(dsn))
	if err != nil {
		return Result{}, fmt.Errorf("migration: open %s: %w", dir, err)
	}
	defer closeMigrate(m, logger)
	m.Log = slogAdapter{logger: logger}

	from, err := version(m)
	if err != nil {
		return Result{}, err
	}

	log := logger.With(slog.String("direction", direction), slog.Uint64("from_version", uint64(from)))
	log.Info("migration_started")

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return Result{From: from}, fmt.Errorf("migration: %s: %w", direction, err)
	}

	to, err := version(m)
	if err != nil {
		return Result{From: from}, err
	}

	result := Result{From: from, To: to}
	log.Info("migration_finished", slog.Uint64("to_version", uint64(to)), slog.Bool("changed", result.Changed()))
	return result, nil
}

// version reads the current schema version; an empty schema is version 0.
func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return v, fmt.Errorf("%w at version %d", ErrDirty, v)
	}
	return v, nil
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	sourceErr, databaseErr := m.Close()
	if err := errors.Join(sourceErr, databaseErr); err != nil {
		logger.Warn("migration_close_failed", slog.Any("error", err))
	}
}

// PgxURL rewrites a postgres:// or postgresql:// URL to the pgx5:// scheme
// the migrate driver registers. Anything else is returned as is.
func PgxURL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogAdapter routes golang-migrate's own log lines to debug level.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Printf(format string, args ...any) {
	a.logger.Debug("migrate", slog.String("line", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (a slogAdapter) Verbose() bool { return false }
