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

const chapterResource = "Chapter"

func scanChapter(row pgx.CollectableRow) (hierarchy.Chapter, error) {
	var c hierarchy.Chapter
	err := row.Scan(&c.ID, &c.StoryID, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (repository *PostgresRepository) ListChapters(ctx context.Context, storyID string) ([]hierarchy.Chapter, error) {
	query := selectFrom(schema.ContentChapter.Columns(), schema.ContentChapter.Table) +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC, %s ASC;",
			schema.ContentChapter.StoryID, schema.ContentChapter.Order, schema.ContentChapter.CreatedAt)
	return collect(ctx, repository.db, chapterResource, "list_chapters", scanChapter, query, storyID)
}

func (repository *PostgresRepository) GetChapter(ctx context.Context, id string) (hierarchy.Chapter, error) {
	query := selectFrom(schema.ContentChapter.Columns(), schema.ContentChapter.Table) +
		fmt.Sprintf(" WHERE %s = $1;", schema.ContentChapter.ID)
	return one(ctx, repository.db, chapterResource, "get_chapter", scanChapter, query, id)
}

// FindChapterByOrder returns the oldest chapter of a story at order.
func (repository *PostgresRepository) FindChapterByOrder(ctx context.Context, storyID string, order int) (hierarchy.Chapter, error) {
	query := selectFrom(schema.ContentChapter.Columns(), schema.ContentChapter.Table) +
		fmt.Sprintf(" WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1;",
			schema.ContentChapter.StoryID, schema.ContentChapter.Order, schema.ContentChapter.CreatedAt)
	return one(ctx, repository.db, chapterResource, "find_chapter_by_order", scanChapter, query, storyID, order)
}

func (repository *PostgresRepository) CreateChapter(ctx context.Context, c *hierarchy.Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s;
	`,
		schema.ContentChapter.Table,
		schema.ContentChapter.ID, schema.ContentChapter.StoryID, schema.ContentChapter.Title, schema.ContentChapter.Order,
		schema.ContentChapter.CreatedAt, schema.ContentChapter.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, c.ID, c.StoryID, c.Title, c.Order).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, chapterResource, "create_chapter")
}

func (repository *PostgresRepository) UpdateChapter(ctx context.Context, c *hierarchy.Chapter) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.ContentChapter.Table,
		schema.ContentChapter.StoryID, schema.ContentChapter.Title, schema.ContentChapter.Order, schema.ContentChapter.UpdatedAt,
		schema.ContentChapter.ID,
		schema.ContentChapter.CreatedAt, schema.ContentChapter.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, c.ID, c.StoryID, c.Title, c.Order).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, chapterResource, "update_chapter")
}

func (repository *PostgresRepository) DeleteChapter(ctx context.Context, id string) error {
	return remove(ctx, repository.db, chapterResource, "delete_chapter", schema.ContentChapter.Table, schema.ContentChapter.ID, id)
}
