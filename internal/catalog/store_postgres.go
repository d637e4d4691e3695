// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/dberr"
	"github.com/taibuivan/bibble/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on the content schema.
//
// It runs on whatever [postgres.DBTX] it is given, so the CSV importer can
// reuse it inside a transaction.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository creates a repository over a pool or a transaction.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

// # Shared helpers

func selectFrom(columns []string, table string) string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
}

// collect runs a query and scans every row with scan.
func collect[T any](ctx context.Context, db postgres.DBTX, resource, action string, scan pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}
	return items, nil
}

// one runs a query that must yield exactly one row.
func one[T any](ctx context.Context, db postgres.DBTX, resource, action string, scan pgx.RowToFunc[T], query string, args ...any) (T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, dberr.Wrap(err, resource, action)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scan)
	return item, dberr.Wrap(err, resource, action)
}

// remove deletes one row by id.
func remove(ctx context.Context, db postgres.DBTX, resource, action, table, idColumn, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table, idColumn)

	tag, err := db.Exec(ctx, query, id)
	if err != nil {
		return dberr.WrapDelete(err, resource, action)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}
