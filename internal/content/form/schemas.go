// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/content/ordinal"
	"github.com/taibuivan/bibble/pkg/pointer"
)

// # Product

// ProductSchema edits products. Title is required in every language.
func ProductSchema() Schema[hierarchy.Product, gateway.ProductPayload] {
	return Schema[hierarchy.Product, gateway.ProductPayload]{
		Kind:   hierarchy.KindProduct,
		Policy: multilingual.RequireAll,
		Fields: []Field[hierarchy.Product]{
			{
				Name: "title", Label: "Title", Required: true,
				Get: func(p hierarchy.Product) multilingual.Text { return p.Title },
				Set: func(p *hierarchy.Product, t multilingual.Text) { p.Title = t },
			},
			{
				Name: "description", Label: "Description",
				Get: func(p hierarchy.Product) multilingual.Text { return p.Description },
				Set: func(p *hierarchy.Product, t multilingual.Text) { p.Description = t },
			},
		},
		Check: checkProduct,
		Payload: func(p hierarchy.Product, _ *int) gateway.ProductPayload {
			return gateway.ProductPayload{
				Type: p.Type, Title: p.Title, Description: p.Description,
				ContentType: p.ContentType, FreePages: p.FreePages, Status: p.Status,
			}
		},
		Resource: func(g gateway.Gateway) gateway.Mutator[hierarchy.Product, gateway.ProductPayload] {
			return g.Products()
		},
		Listing:   func(hierarchy.Product) Destination { return ListOf(hierarchy.KindProduct, "") },
		AfterSave: func(hierarchy.Product) Destination { return ListOf(hierarchy.KindProduct, "") },
	}
}

func checkProduct(p hierarchy.Product) *ValidationError {
	switch {
	case !p.Type.IsValid():
		return &ValidationError{Field: "type", Message: "Please choose a product type"}
	case !p.ContentType.IsValid():
		return &ValidationError{Field: "contentType", Message: "Please choose free or paid content"}
	case !p.Status.IsValid():
		return &ValidationError{Field: "status", Message: "Please choose a status"}
	case p.FreePages < 0:
		return &ValidationError{Field: "freePages", Message: "Free pages cannot be negative"}
	}
	return nil
}

// # Story

// StorySchema edits stories. A title in any one language is enough, and an
// unchanged order is left out of update payloads so a no-op edit never
// rewrites it. Saving moves on to adding a chapter.
func StorySchema() Schema[hierarchy.Story, gateway.StoryPayload] {
	return Schema[hierarchy.Story, gateway.StoryPayload]{
		Kind:   hierarchy.KindStory,
		Policy: multilingual.RequireAny,
		Bible:  true,
		Fields: []Field[hierarchy.Story]{
			{
				Name: "title", Label: "Title", Required: true,
				Get: func(s hierarchy.Story) multilingual.Text { return s.Title },
				Set: func(s *hierarchy.Story, t multilingual.Text) { s.Title = t },
			},
			{
				Name: "description", Label: "Description",
				Get: func(s hierarchy.Story) multilingual.Text { return s.Description },
				Set: func(s *hierarchy.Story, t multilingual.Text) { s.Description = t },
			},
		},
		Parent:               func(s hierarchy.Story) string { return s.ProductID },
		ParentField:          "productId",
		Ordinal:              func(s hierarchy.Story) int { return s.Order },
		SetOrdinal:           func(s *hierarchy.Story, n int) { s.Order = n },
		OrdinalField:         "order",
		OrdinalLabel:         "Order",
		OmitUnchangedOrdinal: true,
		Payload: func(s hierarchy.Story, order *int) gateway.StoryPayload {
			return gateway.StoryPayload{ProductID: s.ProductID, Title: s.Title, Description: s.Description, Order: order}
		},
		Resource: func(g gateway.Gateway) gateway.Mutator[hierarchy.Story, gateway.StoryPayload] {
			return g.Stories()
		},
		Sequencer: func(g gateway.Gateway, logger *slog.Logger) NextFunc {
			return ordinal.NewSequencer[hierarchy.Story](hierarchy.KindStory, g.Stories().ListByParent, logger).Next
		},
		Listing:   func(s hierarchy.Story) Destination { return ListOf(hierarchy.KindStory, s.ProductID) },
		AfterSave: func(s hierarchy.Story) Destination { return CreateUnder(hierarchy.KindChapter, s.ID) },
	}
}

// # Chapter

// ChapterSchema edits chapters. Saving moves on to adding a verse.
func ChapterSchema() Schema[hierarchy.Chapter, gateway.ChapterPayload] {
	return Schema[hierarchy.Chapter, gateway.ChapterPayload]{
		Kind:   hierarchy.KindChapter,
		Policy: multilingual.RequireAll,
		Bible:  true,
		Fields: []Field[hierarchy.Chapter]{
			{
				Name: "title", Label: "Title", Required: true,
				Get: func(c hierarchy.Chapter) multilingual.Text { return c.Title },
				Set: func(c *hierarchy.Chapter, t multilingual.Text) { c.Title = t },
			},
		},
		Parent:       func(c hierarchy.Chapter) string { return c.StoryID },
		ParentField:  "storyId",
		Ordinal:      func(c hierarchy.Chapter) int { return c.Order },
		SetOrdinal:   func(c *hierarchy.Chapter, n int) { c.Order = n },
		OrdinalField: "order",
		OrdinalLabel: "Order",
		Payload: func(c hierarchy.Chapter, order *int) gateway.ChapterPayload {
			return gateway.ChapterPayload{StoryID: c.StoryID, Title: c.Title, Order: pointer.Fallback(order, c.Order)}
		},
		Resource: func(g gateway.Gateway) gateway.Mutator[hierarchy.Chapter, gateway.ChapterPayload] {
			return g.Chapters()
		},
		Sequencer: func(g gateway.Gateway, logger *slog.Logger) NextFunc {
			return ordinal.NewSequencer[hierarchy.Chapter](hierarchy.KindChapter, g.Chapters().ListByParent, logger).Next
		},
		Listing:   func(c hierarchy.Chapter) Destination { return ListOf(hierarchy.KindChapter, c.StoryID) },
		AfterSave: func(c hierarchy.Chapter) Destination { return CreateUnder(hierarchy.KindVerse, c.ID) },
	}
}

// # Verse

// VerseSchema edits verses. Saving returns to the chapter's verse listing.
func VerseSchema() Schema[hierarchy.Verse, gateway.VersePayload] {
	return Schema[hierarchy.Verse, gateway.VersePayload]{
		Kind:   hierarchy.KindVerse,
		Policy: multilingual.RequireAll,
		Bible:  true,
		Fields: []Field[hierarchy.Verse]{
			{
				Name: "text", Label: "Text", Required: true,
				Get: func(v hierarchy.Verse) multilingual.Text { return v.Text },
				Set: func(v *hierarchy.Verse, t multilingual.Text) { v.Text = t },
			},
		},
		Parent:       func(v hierarchy.Verse) string { return v.ChapterID },
		ParentField:  "chapterId",
		Ordinal:      func(v hierarchy.Verse) int { return v.Number },
		SetOrdinal:   func(v *hierarchy.Verse, n int) { v.Number = n },
		OrdinalField: "number",
		OrdinalLabel: "Verse number",
		Payload: func(v hierarchy.Verse, number *int) gateway.VersePayload {
			return gateway.VersePayload{ChapterID: v.ChapterID, Number: pointer.Fallback(number, v.Number), Text: v.Text}
		},
		Resource: func(g gateway.Gateway) gateway.Mutator[hierarchy.Verse, gateway.VersePayload] {
			return g.Verses()
		},
		Sequencer: func(g gateway.Gateway, logger *slog.Logger) NextFunc {
			return ordinal.NewSequencer[hierarchy.Verse](hierarchy.KindVerse, g.Verses().ListByParent, logger).Next
		},
		Listing:   func(v hierarchy.Verse) Destination { return ListOf(hierarchy.KindVerse, v.ChapterID) },
		AfterSave: func(v hierarchy.Verse) Destination { return ListOf(hierarchy.KindVerse, v.ChapterID) },
	}
}

// # Hymn

// HymnSchema edits hymns of a song product.
func HymnSchema() Schema[hierarchy.Hymn, gateway.HymnPayload] {
	return Schema[hierarchy.Hymn, gateway.HymnPayload]{
		Kind:   hierarchy.KindHymn,
		Policy: multilingual.RequireAll,
		Fields: []Field[hierarchy.Hymn]{
			{
				Name: "text", Label: "Text", Required: true,
				Get: func(h hierarchy.Hymn) multilingual.Text { return h.Text },
				Set: func(h *hierarchy.Hymn, t multilingual.Text) { h.Text = t },
			},
		},
		Parent:       func(h hierarchy.Hymn) string { return h.ProductID },
		ParentField:  "productId",
		Ordinal:      func(h hierarchy.Hymn) int { return h.Number },
		SetOrdinal:   func(h *hierarchy.Hymn, n int) { h.Number = n },
		OrdinalField: "number",
		OrdinalLabel: "Hymn number",
		Payload: func(h hierarchy.Hymn, number *int) gateway.HymnPayload {
			return gateway.HymnPayload{ProductID: h.ProductID, Number: pointer.Fallback(number, h.Number), Text: h.Text}
		},
		Resource: func(g gateway.Gateway) gateway.Mutator[hierarchy.Hymn, gateway.HymnPayload] {
			return g.Hymns()
		},
		Sequencer: func(g gateway.Gateway, logger *slog.Logger) NextFunc {
			return ordinal.NewSequencer[hierarchy.Hymn](hierarchy.KindHymn, g.Hymns().ListByParent, logger).Next
		},
		Listing:   func(h hierarchy.Hymn) Destination { return ListOf(hierarchy.KindHymn, h.ProductID) },
		AfterSave: func(h hierarchy.Hymn) Destination { return ListOf(hierarchy.KindHymn, h.ProductID) },
	}
}
