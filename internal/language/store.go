// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package language manages the configured content languages.

The active language list decides which keys a multilingual field must carry,
so every content write consults it. Reads go through a Redis cache that is
invalidated on each mutation.
*/
package language

import (
	"context"
	"errors"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// ErrCacheMiss is returned by a [Cache] that holds no language list.
var ErrCacheMiss = errors.New("language: cache miss")

// Repository defines the data access contract.
type Repository interface {
	List(ctx context.Context) ([]hierarchy.Language, error)
	Get(ctx context.Context, id string) (hierarchy.Language, error)

	// Create and Update clear any other default when the language is the default.
	Create(ctx context.Context, language *hierarchy.Language) error
	Update(ctx context.Context, language *hierarchy.Language) error
	Delete(ctx context.Context, id string) error
}

// Cache holds the full language list.
type Cache interface {
	Get(ctx context.Context) ([]hierarchy.Language, error)
	Set(ctx context.Context, languages []hierarchy.Language) error
	Invalidate(ctx context.Context) error
}
