// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gateway is the data-access contract the content editors consume.

Every backend call answers with the same envelope:

	{"success": true,  "data": ...}
	{"success": false, "message": "Story not found"}

[Decode] turns an envelope into a tagged [Result], and resources surface a
failed result as an [*Error]. The editors treat every failure the same way,
whether it came from the backend, the network or a timeout: report it once and
let the user retry. Nothing in this package retries on its own.

The REST client lives in httpgateway; the memory package holds an in-process
implementation for tests.
*/
package gateway

import (
	"context"
	"io"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// Mutator is the id-scoped half of a resource.
type Mutator[T any, P any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id string, payload P) (T, error)
	Delete(ctx context.Context, id string) error
}

// Resource is a child entity listed by its parent's ID.
type Resource[T any, P any] interface {
	Mutator[T, P]
	ListByParent(ctx context.Context, parentID string) ([]T, error)
}

// ProductResource lists products by filter rather than by parent.
type ProductResource interface {
	Mutator[hierarchy.Product, ProductPayload]
	List(ctx context.Context, filter ProductFilter) ([]hierarchy.Product, error)
}

// LanguageResource lists the language configuration.
type LanguageResource interface {
	Mutator[hierarchy.Language, LanguagePayload]
	List(ctx context.Context) ([]hierarchy.Language, error)
}

// ImportResource validates and commits CSV verse files.
type ImportResource interface {
	Validate(ctx context.Context, filename string, file io.Reader) (ImportReport, error)
	Commit(ctx context.Context, productID, filename string, file io.Reader) (string, error)
}

// Gateway groups every resource the content editors use.
type Gateway interface {
	Products() ProductResource
	Stories() Resource[hierarchy.Story, StoryPayload]
	Chapters() Resource[hierarchy.Chapter, ChapterPayload]
	Verses() Resource[hierarchy.Verse, VersePayload]
	Hymns() Resource[hierarchy.Hymn, HymnPayload]
	Languages() LanguageResource
	Imports() ImportResource
}
