// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/database/schema"
	"github.com/taibuivan/bibble/internal/platform/dberr"
)

const (
	verseResource = "Verse"
	hymnResource  = "Hymn"
)

func scanVerse(row pgx.CollectableRow) (hierarchy.Verse, error) {
	var v hierarchy.Verse
	err := row.Scan(&v.ID, &v.ChapterID, &v.Number, &v.Text, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func scanHymn(row pgx.CollectableRow) (hierarchy.Hymn, error) {
	var h hierarchy.Hymn
	err := row.Scan(&h.ID, &h.ProductID, &h.Number, &h.Text, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// # Verses

func (repository *PostgresRepository) ListVerses(ctx context.Context, chapterID string) ([]hierarchy.Verse, error) {
	query := selectFrom(schema.ContentVerse.Columns(), schema.ContentVerse.Table) +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC, %s ASC;",
			schema.ContentVerse.ChapterID, schema.ContentVerse.Number, schema.ContentVerse.CreatedAt)
	return collect(ctx, repository.db, verseResource, "list_verses", scanVerse, query, chapterID)
}

func (repository *PostgresRepository) GetVerse(ctx context.Context, id string) (hierarchy.Verse, error) {
	query := selectFrom(schema.ContentVerse.Columns(), schema.ContentVerse.Table) +
		fmt.Sprintf(" WHERE %s = $1;", schema.ContentVerse.ID)
	return one(ctx, repository.db, verseResource, "get_verse", scanVerse, query, id)
}

// FindVerseByNumber returns the oldest verse of a chapter with number.
func (repository *PostgresRepository) FindVerseByNumber(ctx context.Context, chapterID string, number int) (hierarchy.Verse, error) {
	query := selectFrom(schema.ContentVerse.Columns(), schema.ContentVerse.Table) +
		fmt.Sprintf(" WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1;",
			schema.ContentVerse.ChapterID, schema.ContentVerse.Number, schema.ContentVerse.CreatedAt)
	return one(ctx, repository.db, verseResource, "find_verse_by_number", scanVerse, query, chapterID, number)
}

func (repository *PostgresRepository) CreateVerse(ctx context.Context, v *hierarchy.Verse) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s;
	`,
		schema.ContentVerse.Table,
		schema.ContentVerse.ID, schema.ContentVerse.ChapterID, schema.ContentVerse.Number, schema.ContentVerse.Text,
		schema.ContentVerse.CreatedAt, schema.ContentVerse.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, v.ID, v.ChapterID, v.Number, v.Text).Scan(&v.CreatedAt, &v.UpdatedAt)
	return dberr.Wrap(err, verseResource, "create_verse")
}

func (repository *PostgresRepository) UpdateVerse(ctx context.Context, v *hierarchy.Verse) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.ContentVerse.Table,
		schema.ContentVerse.ChapterID, schema.ContentVerse.Number, schema.ContentVerse.Text, schema.ContentVerse.UpdatedAt,
		schema.ContentVerse.ID,
		schema.ContentVerse.CreatedAt, schema.ContentVerse.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, v.ID, v.ChapterID, v.Number, v.Text).Scan(&v.CreatedAt, &v.UpdatedAt)
	return dberr.Wrap(err, verseResource, "update_verse")
}

func (repository *PostgresRepository) DeleteVerse(ctx context.Context, id string) error {
	return remove(ctx, repository.db, verseResource, "delete_verse", schema.ContentVerse.Table, schema.ContentVerse.ID, id)
}

// # Hymns

func (repository *PostgresRepository) ListHymns(ctx context.Context, productID string) ([]hierarchy.Hymn, error) {
	query := selectFrom(schema.ContentHymn.Columns(), schema.ContentHymn.Table) +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC, %s ASC;",
			schema.ContentHymn.ProductID, schema.ContentHymn.Number, schema.ContentHymn.CreatedAt)
	return collect(ctx, repository.db, hymnResource, "list_hymns", scanHymn, query, productID)
}

func (repository *PostgresRepository) GetHymn(ctx context.Context, id string) (hierarchy.Hymn, error) {
	query := selectFrom(schema.ContentHymn.Columns(), schema.ContentHymn.Table) +
		fmt.Sprintf(" WHERE %s = $1;", schema.ContentHymn.ID)
	return one(ctx, repository.db, hymnResource, "get_hymn", scanHymn, query, id)
}

func (repository *PostgresRepository) CreateHymn(ctx context.Context, h *hierarchy.Hymn) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s;
	`,
		schema.ContentHymn.Table,
		schema.ContentHymn.ID, schema.ContentHymn.ProductID, schema.ContentHymn.Number, schema.ContentHymn.Text,
		schema.ContentHymn.CreatedAt, schema.ContentHymn.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, h.ID, h.ProductID, h.Number, h.Text).Scan(&h.CreatedAt, &h.UpdatedAt)
	return dberr.Wrap(err, hymnResource, "create_hymn")
}

func (repository *PostgresRepository) UpdateHymn(ctx context.Context, h *hierarchy.Hymn) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.ContentHymn.Table,
		schema.ContentHymn.ProductID, schema.ContentHymn.Number, schema.ContentHymn.Text, schema.ContentHymn.UpdatedAt,
		schema.ContentHymn.ID,
		schema.ContentHymn.CreatedAt, schema.ContentHymn.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, h.ID, h.ProductID, h.Number, h.Text).Scan(&h.CreatedAt, &h.UpdatedAt)
	return dberr.Wrap(err, hymnResource, "update_hymn")
}

func (repository *PostgresRepository) DeleteHymn(ctx context.Context, id string) error {
	return remove(ctx, repository.db, hymnResource, "delete_hymn", schema.ContentHymn.Table, schema.ContentHymn.ID, id)
}
