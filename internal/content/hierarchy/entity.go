// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hierarchy defines the content entities and their field constraints.

	Product ─┬─ Story ── Chapter ── Verse   (book products)
	         └─ Hymn                        (song products)

Children reference their parent by ID. Nothing here cascades: each level is
created and deleted through its own call. Identity is by ID alone.
*/
package hierarchy

import (
	"time"

	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/validate"
)

// Identified is implemented by every entity.
type Identified interface {
	Identity() string
}

// Ordered is implemented by entities that carry a sibling ordinal.
type Ordered interface {
	Ordinal() int
}

// SameID reports whether a and b are the same persisted entity.
// Two unsaved drafts (empty IDs) are never the same.
func SameID[T Identified](a, b T) bool {
	return a.Identity() != "" && a.Identity() == b.Identity()
}

// # Product

// Product is the root of the content hierarchy.
type Product struct {
	ID          string            `json:"id"`
	Type        ProductType       `json:"type"`
	Slug        string            `json:"slug,omitempty"`
	Title       multilingual.Text `json:"title"`
	Description multilingual.Text `json:"description"`
	ContentType ContentType       `json:"contentType"`
	FreePages   int               `json:"freePages"`
	Status      ProductStatus     `json:"status"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	UpdatedAt   time.Time         `json:"updatedAt,omitzero"`
}

func (p Product) Identity() string { return p.ID }

// Validate checks enum and numeric constraints.
func (p Product) Validate() error {
	v := &validate.Validator{}
	v.Custom("type", !p.Type.IsValid(), "Must be one of: book, song")
	v.Custom("contentType", !p.ContentType.IsValid(), "Must be one of: free, paid")
	v.Custom("status", !p.Status.IsValid(), "Must be one of: active, inactive, draft")
	v.NonNegative("freePages", p.FreePages)
	return v.Err()
}

// # Story

// Story is an ordered division of a book product.
type Story struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"productId"`
	Title       multilingual.Text `json:"title"`
	Description multilingual.Text `json:"description"`
	Order       int               `json:"order"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	UpdatedAt   time.Time         `json:"updatedAt,omitzero"`
}

func (s Story) Identity() string { return s.ID }
func (s Story) Ordinal() int     { return s.Order }

// Validate checks the parent reference and ordinal.
func (s Story) Validate() error {
	v := &validate.Validator{}
	v.Required("productId", s.ProductID)
	v.Positive("order", s.Order)
	return v.Err()
}

// # Chapter

// Chapter is an ordered division of a story.
type Chapter struct {
	ID        string            `json:"id"`
	StoryID   string            `json:"storyId"`
	Title     multilingual.Text `json:"title"`
	Order     int               `json:"order"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

func (c Chapter) Identity() string { return c.ID }
func (c Chapter) Ordinal() int     { return c.Order }

// Validate checks the parent reference and ordinal.
func (c Chapter) Validate() error {
	v := &validate.Validator{}
	v.Required("storyId", c.StoryID)
	v.Positive("order", c.Order)
	return v.Err()
}

// # Verse

// Verse is a numbered passage within a chapter.
type Verse struct {
	ID        string            `json:"id"`
	ChapterID string            `json:"chapterId"`
	Number    int               `json:"number"`
	Text      multilingual.Text `json:"text"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

func (v Verse) Identity() string { return v.ID }
func (v Verse) Ordinal() int     { return v.Number }

// Validate checks the parent reference and verse number.
func (v Verse) Validate() error {
	validator := &validate.Validator{}
	validator.Required("chapterId", v.ChapterID)
	validator.Positive("number", v.Number)
	return validator.Err()
}

// # Hymn

// Hymn is a numbered song within a song product.
type Hymn struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	Number    int               `json:"number"`
	Text      multilingual.Text `json:"text"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

func (h Hymn) Identity() string { return h.ID }
func (h Hymn) Ordinal() int     { return h.Number }

// Validate checks the parent reference and hymn number.
func (h Hymn) Validate() error {
	v := &validate.Validator{}
	v.Required("productId", h.ProductID)
	v.Positive("number", h.Number)
	return v.Err()
}
