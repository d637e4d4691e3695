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

const storyResource = "Story"

func scanStory(row pgx.CollectableRow) (hierarchy.Story, error) {
	var s hierarchy.Story
	err := row.Scan(&s.ID, &s.ProductID, &s.Title, &s.Description, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (repository *PostgresRepository) ListStories(ctx context.Context, productID string) ([]hierarchy.Story, error) {
	query := selectFrom(schema.ContentStory.Columns(), schema.ContentStory.Table) +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC, %s ASC;",
			schema.ContentStory.ProductID, schema.ContentStory.Order, schema.ContentStory.CreatedAt)
	return collect(ctx, repository.db, storyResource, "list_stories", scanStory, query, productID)
}

func (repository *PostgresRepository) GetStory(ctx context.Context, id string) (hierarchy.Story, error) {
	query := selectFrom(schema.ContentStory.Columns(), schema.ContentStory.Table) +
		fmt.Sprintf(" WHERE %s = $1;", schema.ContentStory.ID)
	return one(ctx, repository.db, storyResource, "get_story", scanStory, query, id)
}

// FindStoryByOrder returns the oldest story of a product at order.
func (repository *PostgresRepository) FindStoryByOrder(ctx context.Context, productID string, order int) (hierarchy.Story, error) {
	query := selectFrom(schema.ContentStory.Columns(), schema.ContentStory.Table) +
		fmt.Sprintf(" WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1;",
			schema.ContentStory.ProductID, schema.ContentStory.Order, schema.ContentStory.CreatedAt)
	return one(ctx, repository.db, storyResource, "find_story_by_order", scanStory, query, productID, order)
}

func (repository *PostgresRepository) CreateStory(ctx context.Context, s *hierarchy.Story) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s;
	`,
		schema.ContentStory.Table,
		schema.ContentStory.ID, schema.ContentStory.ProductID, schema.ContentStory.Title,
		schema.ContentStory.Description, schema.ContentStory.Order,
		schema.ContentStory.CreatedAt, schema.ContentStory.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, s.ID, s.ProductID, s.Title, s.Description, s.Order).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, storyResource, "create_story")
}

func (repository *PostgresRepository) UpdateStory(ctx context.Context, s *hierarchy.Story) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = now()
		WHERE %s = $1
		RETURNING %s, %s;
	`,
		schema.ContentStory.Table,
		schema.ContentStory.ProductID, schema.ContentStory.Title, schema.ContentStory.Description,
		schema.ContentStory.Order, schema.ContentStory.UpdatedAt,
		schema.ContentStory.ID,
		schema.ContentStory.CreatedAt, schema.ContentStory.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, s.ID, s.ProductID, s.Title, s.Description, s.Order).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, storyResource, "update_story")
}

func (repository *PostgresRepository) DeleteStory(ctx context.Context, id string) error {
	return remove(ctx, repository.db, storyResource, "delete_story", schema.ContentStory.Table, schema.ContentStory.ID, id)
}
