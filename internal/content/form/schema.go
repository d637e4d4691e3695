// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

// Field is one multilingual field of an entity.
type Field[T any] struct {
	// Name is the JSON name, used as the ValidationError field.
	Name string
	// Label is the user-facing name, e.g. "Title".
	Label string
	// Required fields are checked against the schema's policy.
	Required bool

	Get func(T) multilingual.Text
	Set func(*T, multilingual.Text)
}

// NextFunc returns the ordinal for a new child of parentID. It never fails.
type NextFunc func(ctx context.Context, parentID string) int

// Schema describes how one entity kind is edited.
type Schema[T hierarchy.Identified, P any] struct {
	Kind   hierarchy.Kind
	Policy multilingual.Policy
	Fields []Field[T]

	// Bible screens drop [multilingual.BibleExcluded] from the language set.
	Bible bool

	// Parent returns the parent ID; nil for root entities.
	Parent      func(T) string
	ParentField string

	// Ordinal and SetOrdinal are nil for entities without one.
	Ordinal      func(T) int
	SetOrdinal   func(*T, int)
	OrdinalField string
	OrdinalLabel string

	// OmitUnchangedOrdinal leaves the ordinal out of update payloads unless
	// the user changed it since Load.
	OmitUnchangedOrdinal bool

	// Check runs entity-specific rules after completeness. It returns nil or
	// the first violation.
	Check func(T) *ValidationError

	// Payload builds the wire body. ordinal is nil when it must be omitted.
	Payload func(draft T, ordinal *int) P

	Resource  func(gateway.Gateway) gateway.Mutator[T, P]
	Sequencer func(gateway.Gateway, *slog.Logger) NextFunc

	// Listing is where a failed edit-load sends the user.
	Listing func(draft T) Destination
	// AfterSave is where the user goes once a save succeeds.
	AfterSave func(saved T) Destination
}
