// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memory is an in-process [gateway.Gateway] backed by maps.

Editors and the wizard are exercised against it in tests. Each table records
every create/update payload it receives and can be told to fail listings,
reads or writes, which is how fail-open and fail-closed paths are driven.
*/
package memory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// Table stores one entity kind in insertion order.
type Table[T hierarchy.Identified, P any] struct {
	mu     sync.Mutex
	kind   hierarchy.Kind
	rows   []T
	nextID int

	parent func(T) string
	build  func(id string, existing T, payload P) T

	payloads []P

	// ListErr, GetErr and WriteErr, when set, are returned by the matching calls.
	ListErr  error
	GetErr   error
	WriteErr error
}

func newTable[T hierarchy.Identified, P any](kind hierarchy.Kind, parent func(T) string, build func(string, T, P) T) *Table[T, P] {
	return &Table[T, P]{kind: kind, parent: parent, build: build}
}

// Seed stores rows as if they had been created earlier.
func (t *Table[T, P]) Seed(rows ...T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, rows...)
}

// Rows returns a copy of every stored row.
func (t *Table[T, P]) Rows() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.rows)
}

// Payloads returns every create and update payload received, oldest first.
func (t *Table[T, P]) Payloads() []P {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.payloads)
}

// ListByParent implements [gateway.Resource].
func (t *Table[T, P]) ListByParent(_ context.Context, parentID string) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ListErr != nil {
		return nil, t.ListErr
	}

	var out []T
	for _, row := range t.rows {
		if t.parent == nil || t.parent(row) == parentID {
			out = append(out, row)
		}
	}
	return out, nil
}

// Get implements [gateway.Mutator].
func (t *Table[T, P]) Get(_ context.Context, id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	if t.GetErr != nil {
		return zero, t.GetErr
	}

	index := t.indexOf(id)
	if index < 0 {
		return zero, t.notFound()
	}
	return t.rows[index], nil
}

// Create implements [gateway.Mutator].
func (t *Table[T, P]) Create(_ context.Context, payload P) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	t.payloads = append(t.payloads, payload)
	if t.WriteErr != nil {
		return zero, t.WriteErr
	}

	t.nextID++
	row := t.build(fmt.Sprintf("%s-%d", t.kind, t.nextID), zero, payload)
	t.rows = append(t.rows, row)
	return row, nil
}

// Update implements [gateway.Mutator].
func (t *Table[T, P]) Update(_ context.Context, id string, payload P) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	t.payloads = append(t.payloads, payload)
	if t.WriteErr != nil {
		return zero, t.WriteErr
	}

	index := t.indexOf(id)
	if index < 0 {
		return zero, t.notFound()
	}

	t.rows[index] = t.build(id, t.rows[index], payload)
	return t.rows[index], nil
}

// Delete implements [gateway.Mutator].
func (t *Table[T, P]) Delete(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.WriteErr != nil {
		return t.WriteErr
	}

	index := t.indexOf(id)
	if index < 0 {
		return t.notFound()
	}
	t.rows = slices.Delete(t.rows, index, index+1)
	return nil
}

func (t *Table[T, P]) indexOf(id string) int {
	return slices.IndexFunc(t.rows, func(row T) bool { return row.Identity() == id })
}

func (t *Table[T, P]) notFound() error {
	return &gateway.Error{Message: t.kind.Title() + " not found", Status: http.StatusNotFound}
}

// # Gateway

// Gateway holds one table per entity kind.
type Gateway struct {
	ProductTable  *Table[hierarchy.Product, gateway.ProductPayload]
	StoryTable    *Table[hierarchy.Story, gateway.StoryPayload]
	ChapterTable  *Table[hierarchy.Chapter, gateway.ChapterPayload]
	VerseTable    *Table[hierarchy.Verse, gateway.VersePayload]
	HymnTable     *Table[hierarchy.Hymn, gateway.HymnPayload]
	LanguageTable *Table[hierarchy.Language, gateway.LanguagePayload]
	ImportStub    *Imports
}

var _ gateway.Gateway = (*Gateway)(nil)

// New returns an empty gateway.
func New() *Gateway {
	return &Gateway{
		ProductTable: newTable[hierarchy.Product, gateway.ProductPayload](hierarchy.KindProduct, nil, func(id string, _ hierarchy.Product, p gateway.ProductPayload) hierarchy.Product {
			return hierarchy.Product{
				ID: id, Type: p.Type, Title: p.Title, Description: p.Description,
				ContentType: p.ContentType, FreePages: p.FreePages, Status: p.Status,
			}
		}),

		StoryTable: newTable(hierarchy.KindStory, func(s hierarchy.Story) string { return s.ProductID },
			func(id string, existing hierarchy.Story, p gateway.StoryPayload) hierarchy.Story {
				order := existing.Order
				if p.Order != nil {
					order = *p.Order
				}
				return hierarchy.Story{ID: id, ProductID: p.ProductID, Title: p.Title, Description: p.Description, Order: order}
			}),

		ChapterTable: newTable(hierarchy.KindChapter, func(c hierarchy.Chapter) string { return c.StoryID },
			func(id string, _ hierarchy.Chapter, p gateway.ChapterPayload) hierarchy.Chapter {
				return hierarchy.Chapter{ID: id, StoryID: p.StoryID, Title: p.Title, Order: p.Order}
			}),

		VerseTable: newTable(hierarchy.KindVerse, func(v hierarchy.Verse) string { return v.ChapterID },
			func(id string, _ hierarchy.Verse, p gateway.VersePayload) hierarchy.Verse {
				return hierarchy.Verse{ID: id, ChapterID: p.ChapterID, Number: p.Number, Text: p.Text}
			}),

		HymnTable: newTable(hierarchy.KindHymn, func(h hierarchy.Hymn) string { return h.ProductID },
			func(id string, _ hierarchy.Hymn, p gateway.HymnPayload) hierarchy.Hymn {
				return hierarchy.Hymn{ID: id, ProductID: p.ProductID, Number: p.Number, Text: p.Text}
			}),

		LanguageTable: newTable[hierarchy.Language, gateway.LanguagePayload](hierarchy.KindLanguage, nil, func(id string, _ hierarchy.Language, p gateway.LanguagePayload) hierarchy.Language {
			return hierarchy.Language{
				ID: id, Name: p.Name, Code: p.Code, Symbol: p.Symbol,
				IsActive: p.IsActive, IsDefault: p.IsDefault, SortOrder: p.SortOrder,
			}
		}),

		ImportStub: &Imports{Report: gateway.ImportReport{IsValid: true, Errors: []string{}}},
	}
}

func (g *Gateway) Products() gateway.ProductResource { return products{g.ProductTable} }
func (g *Gateway) Stories() gateway.Resource[hierarchy.Story, gateway.StoryPayload] {
	return g.StoryTable
}
func (g *Gateway) Chapters() gateway.Resource[hierarchy.Chapter, gateway.ChapterPayload] {
	return g.ChapterTable
}
func (g *Gateway) Verses() gateway.Resource[hierarchy.Verse, gateway.VersePayload] {
	return g.VerseTable
}
func (g *Gateway) Hymns() gateway.Resource[hierarchy.Hymn, gateway.HymnPayload] {
	return g.HymnTable
}
func (g *Gateway) Languages() gateway.LanguageResource { return languages{g.LanguageTable} }
func (g *Gateway) Imports() gateway.ImportResource     { return g.ImportStub }

type products struct {
	*Table[hierarchy.Product, gateway.ProductPayload]
}

func (p products) List(ctx context.Context, filter gateway.ProductFilter) ([]hierarchy.Product, error) {
	all, err := p.ListByParent(ctx, "")
	if err != nil {
		return nil, err
	}

	var out []hierarchy.Product
	for _, product := range all {
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, product.Type) {
			continue
		}
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		out = append(out, product)
	}
	return out, nil
}

type languages struct {
	*Table[hierarchy.Language, gateway.LanguagePayload]
}

func (l languages) List(ctx context.Context) ([]hierarchy.Language, error) {
	return l.ListByParent(ctx, "")
}

// Imports answers CSV calls with a fixed report and records what was sent.
type Imports struct {
	mu       sync.Mutex
	Report   gateway.ImportReport
	Err      error
	Received []string
}

func (i *Imports) Validate(_ context.Context, filename string, file io.Reader) (gateway.ImportReport, error) {
	i.record(filename, file)
	if i.Err != nil {
		return gateway.ImportReport{}, i.Err
	}
	return i.Report, nil
}

func (i *Imports) Commit(_ context.Context, productID, filename string, file io.Reader) (string, error) {
	i.record(filename, file)
	if i.Err != nil {
		return "", i.Err
	}
	return "Imported " + filename + " into " + productID, nil
}

func (i *Imports) record(filename string, file io.Reader) {
	body, _ := io.ReadAll(file)
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Received = append(i.Received, filename+":"+string(body))
}
