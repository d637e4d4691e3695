// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multilingual_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/content/multilingual"
)

func TestIsEmpty(t *testing.T) {
	empty := []string{
		"",
		"   \n\t",
		"<p></p>",
		"<p><br></p>",
		"<p>&nbsp;</p>",
		"<p>\u200b</p>",
		"<p>​</p>",
		"<!-- draft --><p> </p>",
		"<style>p { color: red }</style><p></p>",
		"<script>alert('x')</script>",
		"<ul><li></li><li>&emsp;</li></ul>",
	}
	for _, fragment := range empty {
		assert.True(t, multilingual.IsEmpty(fragment), "%q should be empty", fragment)
	}

	filled := []string{
		"Genesis",
		"<p>In the beginning</p>",
		"<p>&amp;</p>",
		"<p>&nbsp;a&nbsp;</p>",
		"<b>.</b>",
		"<p>उत्पत्ति</p>",
		"a < b",
	}
	for _, fragment := range filled {
		assert.False(t, multilingual.IsEmpty(fragment), "%q should not be empty", fragment)
	}
}

func TestIsComplete(t *testing.T) {
	field := multilingual.Text{"en": "<p>Genesis</p>", "sw": "<p>&nbsp;</p>", "fr": "Genèse"}

	assert.True(t, multilingual.IsComplete(field, []string{"en", "fr"}))
	assert.False(t, multilingual.IsComplete(field, []string{"en", "sw"}))
	assert.False(t, multilingual.IsComplete(field, []string{"rn"}))
	assert.True(t, multilingual.IsComplete(field, nil))
}

func TestPolicySatisfied(t *testing.T) {
	codes := []string{"en", "sw"}

	tests := []struct {
		name   string
		policy multilingual.Policy
		field  multilingual.Text
		want   bool
	}{
		{"all_filled", multilingual.RequireAll, multilingual.Text{"en": "a", "sw": "b"}, true},
		{"all_partial", multilingual.RequireAll, multilingual.Text{"en": "a", "sw": ""}, false},
		{"any_partial", multilingual.RequireAny, multilingual.Text{"en": "a", "sw": ""}, true},
		{"any_none", multilingual.RequireAny, multilingual.Text{"en": "<p></p>"}, false},
		{"any_foreign_only", multilingual.RequireAny, multilingual.Text{"hi": "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Satisfied(tt.field, codes))
		})
	}

	assert.Equal(t, "all", multilingual.RequireAll.String())
	assert.Equal(t, "any", multilingual.RequireAny.String())
}

func TestClean(t *testing.T) {
	allowed := []string{"en", "sw", "fr"}
	field := multilingual.Text{
		"en": "<p>Genesis</p>",
		"sw": "",
		"fr": "<p>&nbsp;</p>",
		"hi": "उत्पत्ति",
		"xx": "legacy",
	}

	cleaned := multilingual.Clean(field, allowed)

	assert.Equal(t, multilingual.Text{"en": "<p>Genesis</p>"}, cleaned)
	for code, value := range cleaned {
		assert.Contains(t, allowed, code)
		assert.False(t, multilingual.IsEmpty(value))
	}

	assert.Equal(t, cleaned, multilingual.Clean(cleaned, allowed), "clean must be idempotent")
	assert.Len(t, field, 5, "input must not be mutated")
	assert.NotNil(t, multilingual.Clean(nil, allowed))
}

func TestMissingLanguageLabels(t *testing.T) {
	names := multilingual.NewLanguageSet(
		multilingual.Language{Code: "en", Name: "English"},
		multilingual.Language{Code: "fr", Name: "French"},
		multilingual.Language{Code: "sw", Name: "Swahili"},
	)
	field := multilingual.Text{"en": "Genesis", "fr": "<p></p>"}

	labels := slices.Collect(multilingual.MissingLanguageLabels(field, names.Codes(), "Title", names.Name))
	assert.Equal(t, []string{"Title (French)", "Title (Swahili)"}, labels)

	// Consumers may stop early; the sequence must honour that.
	var first []string
	for label := range multilingual.MissingLanguageLabels(field, names.Codes(), "Title", names.Name) {
		first = append(first, label)
		break
	}
	assert.Equal(t, []string{"Title (French)"}, first)

	complete := multilingual.Text{"en": "a", "fr": "b", "sw": "c"}
	assert.Empty(t, slices.Collect(multilingual.MissingLanguageLabels(complete, names.Codes(), "Title", names.Name)))
}
