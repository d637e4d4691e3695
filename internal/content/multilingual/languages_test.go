// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multilingual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/content/multilingual"
)

func newSet() multilingual.LanguageSet {
	return multilingual.NewLanguageSet(
		multilingual.Language{Code: "en", Name: "English"},
		multilingual.Language{Code: "sw", Name: "Kiswahili"},
		multilingual.Language{Code: "hi"},
		multilingual.Language{Code: "en", Name: "Duplicate"},
		multilingual.Language{Code: " "},
	)
}

func TestLanguageSet_Codes(t *testing.T) {
	set := newSet()

	assert.Equal(t, []string{"en", "sw", "hi"}, set.Codes())
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("sw"))
	assert.False(t, set.Contains("fr"))
}

func TestLanguageSet_Name(t *testing.T) {
	set := newSet()

	assert.Equal(t, "Kiswahili", set.Name("sw"))
	assert.Equal(t, "Hindi", set.Name("hi"), "falls back to CLDR display name")
	assert.Equal(t, "French", set.Name("fr"))
	assert.Equal(t, "NOT-A-CODE!", set.Name("not-a-code!"))
}

func TestLanguageSet_ForBible(t *testing.T) {
	set := newSet()

	assert.Equal(t, []string{"en", "sw"}, set.ForBible().Codes())
	assert.Equal(t, []string{"en", "sw", "hi"}, set.Codes(), "original snapshot is unchanged")
}

func TestLanguageSet_Backfill(t *testing.T) {
	set := newSet().ForBible()
	stored := multilingual.Text{"en": "Genesis", "xx": "legacy"}

	filled := set.Backfill(stored)

	assert.Equal(t, multilingual.Text{"en": "Genesis", "sw": "", "xx": "legacy"}, filled)
	assert.NotContains(t, stored, "sw", "input must not be mutated")
	assert.Equal(t, multilingual.Clean(stored, set.Codes()), set.Clean(filled))
}
