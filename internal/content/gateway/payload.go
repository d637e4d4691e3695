// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

// ProductPayload is the create/update body for a product.
type ProductPayload struct {
	Type        hierarchy.ProductType   `json:"type"`
	Title       multilingual.Text       `json:"title"`
	Description multilingual.Text       `json:"description"`
	ContentType hierarchy.ContentType   `json:"contentType"`
	FreePages   int                     `json:"freePages"`
	Status      hierarchy.ProductStatus `json:"status"`
}

// StoryPayload is the create/update body for a story.
//
// A nil Order is left out of the JSON. On update the stored order is kept;
// on create the backend assigns the next free one.
type StoryPayload struct {
	ProductID   string            `json:"productId"`
	Title       multilingual.Text `json:"title"`
	Description multilingual.Text `json:"description"`
	Order       *int              `json:"order,omitempty"`
}

// ChapterPayload is the create/update body for a chapter.
type ChapterPayload struct {
	StoryID string            `json:"storyId"`
	Title   multilingual.Text `json:"title"`
	Order   int               `json:"order"`
}

// VersePayload is the create/update body for a verse.
type VersePayload struct {
	ChapterID string            `json:"chapterId"`
	Number    int               `json:"number"`
	Text      multilingual.Text `json:"text"`
}

// HymnPayload is the create/update body for a hymn.
type HymnPayload struct {
	ProductID string            `json:"productId"`
	Number    int               `json:"number"`
	Text      multilingual.Text `json:"text"`
}

// LanguagePayload is the create/update body for a language.
type LanguagePayload struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Symbol    string `json:"symbol"`
	IsActive  bool   `json:"isActive"`
	IsDefault bool   `json:"isDefault"`
	SortOrder int    `json:"sortOrder"`
}

// ProductFilter narrows a product listing. Zero values mean "any".
type ProductFilter struct {
	Types  []hierarchy.ProductType
	Status hierarchy.ProductStatus
	Page   int
	Limit  int
}

// ImportReport is the outcome of a CSV dry run.
type ImportReport struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
