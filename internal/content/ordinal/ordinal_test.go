// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ordinal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/ordinal"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func stories(orders ...int) []hierarchy.Story {
	out := make([]hierarchy.Story, len(orders))
	for i, order := range orders {
		out[i] = hierarchy.Story{ID: "s", Order: order}
	}
	return out
}

func TestNext(t *testing.T) {
	assert.Equal(t, 1, ordinal.Next[hierarchy.Story](nil))
	assert.Equal(t, 1, ordinal.Next(stories()))
	assert.Equal(t, 6, ordinal.Next(stories(3, 1, 5)))
	assert.Equal(t, 1, ordinal.Next(stories(-4, 0)))
}

func TestNext_OrderInsensitive(t *testing.T) {
	siblings := stories(7, 2, 9, 4)
	want := ordinal.Next(siblings)

	reversed := slices.Clone(siblings)
	slices.Reverse(reversed)
	sorted := slices.Clone(siblings)
	slices.SortFunc(sorted, func(a, b hierarchy.Story) int { return a.Order - b.Order })

	assert.Equal(t, 10, want)
	assert.Equal(t, want, ordinal.Next(reversed))
	assert.Equal(t, want, ordinal.Next(sorted))
}

func TestNext_AllKinds(t *testing.T) {
	assert.Equal(t, 3, ordinal.Next([]hierarchy.Chapter{{Order: 2}, {Order: 1}}))
	assert.Equal(t, 2, ordinal.Next([]hierarchy.Verse{{Number: 1}}))
	assert.Equal(t, 11, ordinal.Next([]hierarchy.Hymn{{Number: 10}}))
	assert.Equal(t, 4, ordinal.NextBy([]int{3}, func(n int) int { return n }))
}

func TestSequencer_FailOpen(t *testing.T) {
	failing := func(context.Context, string) ([]hierarchy.Verse, error) {
		return nil, errors.New("connection refused")
	}
	sequencer := ordinal.NewSequencer(hierarchy.KindVerse, failing, quiet)

	assert.Equal(t, ordinal.First, sequencer.Next(context.Background(), "C1"))
}

func TestSequencer_UsesLiveListing(t *testing.T) {
	var calls int
	listing := func(_ context.Context, parentID string) ([]hierarchy.Chapter, error) {
		calls++
		assert.Equal(t, "S1", parentID)
		return []hierarchy.Chapter{{Order: calls}}, nil
	}
	sequencer := ordinal.NewSequencer(hierarchy.KindChapter, listing, quiet)

	assert.Equal(t, 2, sequencer.Next(context.Background(), "S1"))
	assert.Equal(t, 3, sequencer.Next(context.Background(), "S1"), "no caching between calls")
}

// Two creates that both read the siblings before either writes pick the
// same number. The collision is expected.
func TestSequencer_ReadThenWriteRace(t *testing.T) {
	var (
		mu     sync.Mutex
		stored = []hierarchy.Verse{{ID: "v1", ChapterID: "C1", Number: 1}}
		reads  sync.WaitGroup
	)
	reads.Add(2)

	listing := func(context.Context, string) ([]hierarchy.Verse, error) {
		mu.Lock()
		snapshot := slices.Clone(stored)
		mu.Unlock()
		reads.Done()
		reads.Wait()
		return snapshot, nil
	}
	sequencer := ordinal.NewSequencer(hierarchy.KindVerse, listing, quiet)

	numbers := make([]int, 2)
	var creates sync.WaitGroup
	for i := range 2 {
		creates.Add(1)
		go func() {
			defer creates.Done()
			number := sequencer.Next(context.Background(), "C1")
			mu.Lock()
			stored = append(stored, hierarchy.Verse{ChapterID: "C1", Number: number})
			mu.Unlock()
			numbers[i] = number
		}()
	}
	creates.Wait()

	assert.Equal(t, []int{2, 2}, numbers)
	assert.Len(t, stored, 3)
}
