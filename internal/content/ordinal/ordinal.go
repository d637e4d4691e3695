// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ordinal computes the next order or number for a new sibling.

The same rule serves Story.Order, Chapter.Order, Verse.Number and Hymn.Number:
one more than the largest ordinal among the current siblings, or 1 when there
are none.

# Concurrency

[Sequencer.Next] reads the siblings and the caller writes later. Two creates
against the same parent that both read before either writes will pick the same
ordinal. Storage does not reject the duplicate; an editor fixes it by hand.
*/
package ordinal

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// First is the ordinal assigned to the first child of a parent.
const First = 1

// Next returns max(Ordinal) + 1 over siblings, or [First] for none.
// The result does not depend on the order of siblings.
func Next[T hierarchy.Ordered](siblings []T) int {
	return NextBy(siblings, func(sibling T) int { return sibling.Ordinal() })
}

// NextBy is [Next] with an explicit ordinal accessor.
func NextBy[T any](siblings []T, ordinal func(T) int) int {
	highest := 0
	for _, sibling := range siblings {
		highest = max(highest, ordinal(sibling))
	}
	return highest + 1
}

// ListFunc fetches the current children of parentID.
type ListFunc[T any] func(ctx context.Context, parentID string) ([]T, error)

// Sequencer resolves ordinals against a live sibling listing.
type Sequencer[T hierarchy.Ordered] struct {
	kind   hierarchy.Kind
	list   ListFunc[T]
	logger *slog.Logger
}

// NewSequencer creates a sequencer for children of the given kind.
func NewSequencer[T hierarchy.Ordered](kind hierarchy.Kind, list ListFunc[T], logger *slog.Logger) *Sequencer[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer[T]{kind: kind, list: list, logger: logger}
}

// Next fetches the siblings under parentID and returns the next ordinal.
//
// A listing failure never blocks creation: it is logged and [First] is
// returned, accepting a possible collision with existing siblings.
func (s *Sequencer[T]) Next(ctx context.Context, parentID string) int {
	siblings, err := s.list(ctx, parentID)
	if err != nil {
		s.logger.WarnContext(ctx, "ordinal_sibling_listing_failed",
			slog.String("kind", string(s.kind)),
			slog.String("parent_id", parentID),
			slog.Any("error", err),
		)
		return First
	}
	return Next(siblings)
}
