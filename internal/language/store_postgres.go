// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/database/schema"
	"github.com/taibuivan/bibble/internal/platform/dberr"
	"github.com/taibuivan/bibble/internal/platform/postgres"
)

const resourceName = "Language"

// PostgresRepository implements [Repository] on core.language.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanLanguage(row pgx.CollectableRow) (hierarchy.Language, error) {
	var l hierarchy.Language
	err := row.Scan(&l.ID, &l.Name, &l.Code, &l.Symbol, &l.IsActive, &l.IsDefault, &l.SortOrder, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (repository *PostgresRepository) List(ctx context.Context) ([]hierarchy.Language, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC;
	`,
		strings.Join(schema.CoreLanguage.Columns(), ", "),
		schema.CoreLanguage.Table,
		schema.CoreLanguage.SortOrder,
		schema.CoreLanguage.Code,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_languages")
	}

	languages, err := pgx.CollectRows(rows, scanLanguage)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "scan_language")
	}
	return languages, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (hierarchy.Language, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`,
		strings.Join(schema.CoreLanguage.Columns(), ", "),
		schema.CoreLanguage.Table,
		schema.CoreLanguage.ID,
	)

	rows, err := repository.db.Query(ctx, query, id)
	if err != nil {
		return hierarchy.Language{}, dberr.Wrap(err, resourceName, "get_language")
	}

	language, err := pgx.CollectExactlyOneRow(rows, scanLanguage)
	return language, dberr.Wrap(err, resourceName, "get_language")
}

func (repository *PostgresRepository) Create(ctx context.Context, language *hierarchy.Language) error {
	return postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		if language.IsDefault {
			if err := clearDefault(ctx, tx, language.ID); err != nil {
				return err
			}
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING %s, %s;
		`,
			schema.CoreLanguage.Table,
			schema.CoreLanguage.ID,
			schema.CoreLanguage.Name,
			schema.CoreLanguage.Code,
			schema.CoreLanguage.Symbol,
			schema.CoreLanguage.IsActive,
			schema.CoreLanguage.IsDefault,
			schema.CoreLanguage.SortOrder,
			schema.CoreLanguage.CreatedAt,
			schema.CoreLanguage.UpdatedAt,
		)

		err := tx.QueryRow(ctx, query,
			language.ID, language.Name, language.Code, language.Symbol,
			language.IsActive, language.IsDefault, language.SortOrder,
		).Scan(&language.CreatedAt, &language.UpdatedAt)
		return dberr.Wrap(err, resourceName, "create_language")
	})
}

func (repository *PostgresRepository) Update(ctx context.Context, language *hierarchy.Language) error {
	return postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		if language.IsDefault {
			if err := clearDefault(ctx, tx, language.ID); err != nil {
				return err
			}
		}

		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = now()
			WHERE %s = $1
			RETURNING %s, %s;
		`,
			schema.CoreLanguage.Table,
			schema.CoreLanguage.Name,
			schema.CoreLanguage.Code,
			schema.CoreLanguage.Symbol,
			schema.CoreLanguage.IsActive,
			schema.CoreLanguage.IsDefault,
			schema.CoreLanguage.SortOrder,
			schema.CoreLanguage.UpdatedAt,
			schema.CoreLanguage.ID,
			schema.CoreLanguage.CreatedAt,
			schema.CoreLanguage.UpdatedAt,
		)

		err := tx.QueryRow(ctx, query,
			language.ID, language.Name, language.Code, language.Symbol,
			language.IsActive, language.IsDefault, language.SortOrder,
		).Scan(&language.CreatedAt, &language.UpdatedAt)
		return dberr.Wrap(err, resourceName, "update_language")
	})
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, schema.CoreLanguage.Table, schema.CoreLanguage.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_language")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

// clearDefault drops the default flag from every language except keepID.
func clearDefault(ctx context.Context, tx pgx.Tx, keepID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = now() WHERE %s AND %s <> $1;`,
		schema.CoreLanguage.Table,
		schema.CoreLanguage.IsDefault,
		schema.CoreLanguage.UpdatedAt,
		schema.CoreLanguage.IsDefault,
		schema.CoreLanguage.ID,
	)

	_, err := tx.Exec(ctx, query, keepID)
	return dberr.Wrap(err, resourceName, "clear_default_language")
}
