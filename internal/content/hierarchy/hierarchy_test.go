// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hierarchy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/content/hierarchy"
	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/apperr"
)

func TestEnums(t *testing.T) {
	assert.True(t, hierarchy.ProductBook.IsValid())
	assert.False(t, hierarchy.ProductType("album").IsValid())
	assert.True(t, hierarchy.ContentPaid.IsValid())
	assert.False(t, hierarchy.ContentType("").IsValid())
	assert.True(t, hierarchy.StatusDraft.IsValid())
	assert.False(t, hierarchy.ProductStatus("archived").IsValid())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Chapter", hierarchy.KindChapter.Title())
	assert.Equal(t, hierarchy.KindChapter, hierarchy.KindVerse.Parent())
	assert.Equal(t, hierarchy.KindProduct, hierarchy.KindHymn.Parent())
	assert.Equal(t, hierarchy.Kind(""), hierarchy.KindProduct.Parent())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		entity interface{ Validate() error }
		field  string
	}{
		{"product_ok", hierarchy.Product{Type: "book", ContentType: "free", Status: "active"}, ""},
		{"product_bad_type", hierarchy.Product{Type: "album", ContentType: "free", Status: "active"}, "type"},
		{"product_negative_pages", hierarchy.Product{Type: "song", ContentType: "paid", Status: "draft", FreePages: -1}, "freePages"},
		{"story_ok", hierarchy.Story{ProductID: "P1", Order: 1}, ""},
		{"story_no_parent", hierarchy.Story{Order: 1}, "productId"},
		{"chapter_zero_order", hierarchy.Chapter{StoryID: "S1"}, "order"},
		{"verse_no_parent", hierarchy.Verse{Number: 2}, "chapterId"},
		{"hymn_negative", hierarchy.Hymn{ProductID: "P2", Number: -3}, "number"},
		{"language_bad_code", hierarchy.Language{Name: "English", Code: "English"}, "code"},
		{"language_inactive_default", hierarchy.Language{Name: "English", Code: "en", IsDefault: true}, "isDefault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

func TestSameID(t *testing.T) {
	assert.True(t, hierarchy.SameID(hierarchy.Story{ID: "s1", Order: 1}, hierarchy.Story{ID: "s1", Order: 9}))
	assert.False(t, hierarchy.SameID(hierarchy.Story{ID: "s1"}, hierarchy.Story{ID: "s2"}))
	assert.False(t, hierarchy.SameID(hierarchy.Verse{}, hierarchy.Verse{}))
}

func TestOrdinal(t *testing.T) {
	ordered := []hierarchy.Ordered{
		hierarchy.Story{Order: 2},
		hierarchy.Chapter{Order: 3},
		hierarchy.Verse{Number: 4},
		hierarchy.Hymn{Number: 5},
	}
	for i, entity := range ordered {
		assert.Equal(t, i+2, entity.Ordinal())
	}
}

func TestJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(hierarchy.Product{
		ID: "p1", Type: hierarchy.ProductBook, Title: multilingual.Text{"en": "Genesis"},
		ContentType: hierarchy.ContentPaid, FreePages: 3, Status: hierarchy.StatusActive,
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "paid", body["contentType"])
	assert.Equal(t, 3.0, body["freePages"])
	assert.NotContains(t, body, "createdAt")
}

func TestActiveSet(t *testing.T) {
	set := hierarchy.ActiveSet([]hierarchy.Language{
		{Code: "sw", Name: "Swahili", IsActive: true, SortOrder: 2},
		{Code: "hi", Name: "Hindi", IsActive: false, SortOrder: 0},
		{Code: "fr", Name: "French", IsActive: true, SortOrder: 2},
		{Code: "en", Name: "English", IsActive: true, SortOrder: 1},
	})

	assert.Equal(t, []string{"en", "fr", "sw"}, set.Codes())
	assert.Equal(t, "Swahili", set.Name("sw"))
}
