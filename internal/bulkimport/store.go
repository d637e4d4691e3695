// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bulkimport

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bibble/internal/catalog"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/platform/postgres"
)

// Store is the slice of the catalog a commit writes through.
type Store interface {
	GetProduct(ctx context.Context, id string) (hierarchy.Product, error)

	FindStoryByOrder(ctx context.Context, productID string, order int) (hierarchy.Story, error)
	CreateStory(ctx context.Context, story *hierarchy.Story) error

	FindChapterByOrder(ctx context.Context, storyID string, order int) (hierarchy.Chapter, error)
	CreateChapter(ctx context.Context, chapter *hierarchy.Chapter) error

	FindVerseByNumber(ctx context.Context, chapterID string, number int) (hierarchy.Verse, error)
	CreateVerse(ctx context.Context, verse *hierarchy.Verse) error
	UpdateVerse(ctx context.Context, verse *hierarchy.Verse) error
}

// Transactor runs fn against a [Store] inside one transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(Store) error) error
}

// PostgresTransactor opens a transaction on the pool and hands fn a catalog
// repository bound to it.
type PostgresTransactor struct {
	db postgres.TxBeginner
}

// NewPostgresTransactor creates a Transactor over a pool.
func NewPostgresTransactor(db postgres.TxBeginner) *PostgresTransactor {
	return &PostgresTransactor{db: db}
}

func (transactor *PostgresTransactor) InTx(ctx context.Context, fn func(Store) error) error {
	return postgres.WithTx(ctx, transactor.db, func(tx pgx.Tx) error {
		return fn(catalog.NewPostgresRepository(tx))
	})
}
