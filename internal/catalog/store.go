// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// ProductFilter narrows a product listing. Zero values mean "any".
type ProductFilter struct {
	Types  []hierarchy.ProductType
	Status hierarchy.ProductStatus
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]hierarchy.Product, int, error)
	GetProduct(ctx context.Context, id string) (hierarchy.Product, error)
	CreateProduct(ctx context.Context, product *hierarchy.Product) error
	UpdateProduct(ctx context.Context, product *hierarchy.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// StoryRepository defines story persistence.
type StoryRepository interface {
	ListStories(ctx context.Context, productID string) ([]hierarchy.Story, error)
	GetStory(ctx context.Context, id string) (hierarchy.Story, error)
	FindStoryByOrder(ctx context.Context, productID string, order int) (hierarchy.Story, error)
	CreateStory(ctx context.Context, story *hierarchy.Story) error
	UpdateStory(ctx context.Context, story *hierarchy.Story) error
	DeleteStory(ctx context.Context, id string) error
}

// ChapterRepository defines chapter persistence.
type ChapterRepository interface {
	ListChapters(ctx context.Context, storyID string) ([]hierarchy.Chapter, error)
	GetChapter(ctx context.Context, id string) (hierarchy.Chapter, error)
	FindChapterByOrder(ctx context.Context, storyID string, order int) (hierarchy.Chapter, error)
	CreateChapter(ctx context.Context, chapter *hierarchy.Chapter) error
	UpdateChapter(ctx context.Context, chapter *hierarchy.Chapter) error
	DeleteChapter(ctx context.Context, id string) error
}

// VerseRepository defines verse persistence.
type VerseRepository interface {
	ListVerses(ctx context.Context, chapterID string) ([]hierarchy.Verse, error)
	GetVerse(ctx context.Context, id string) (hierarchy.Verse, error)
	FindVerseByNumber(ctx context.Context, chapterID string, number int) (hierarchy.Verse, error)
	CreateVerse(ctx context.Context, verse *hierarchy.Verse) error
	UpdateVerse(ctx context.Context, verse *hierarchy.Verse) error
	DeleteVerse(ctx context.Context, id string) error
}

// HymnRepository defines hymn persistence.
type HymnRepository interface {
	ListHymns(ctx context.Context, productID string) ([]hierarchy.Hymn, error)
	GetHymn(ctx context.Context, id string) (hierarchy.Hymn, error)
	CreateHymn(ctx context.Context, hymn *hierarchy.Hymn) error
	UpdateHymn(ctx context.Context, hymn *hierarchy.Hymn) error
	DeleteHymn(ctx context.Context, id string) error
}

// Repository is the full catalog data access contract.
type Repository interface {
	ProductRepository
	StoryRepository
	ChapterRepository
	VerseRepository
	HymnRepository
}
