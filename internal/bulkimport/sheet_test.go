// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bulkimport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/bulkimport"
	"github.com/taibuivan/bibble/internal/content/multilingual"
)

var bible = multilingual.NewLanguageSet(
	multilingual.Language{Code: "en", Name: "English"},
	multilingual.Language{Code: "fr", Name: "French"},
)

/*
TestParse_Valid verifies a well-formed file, including BOM, blank lines and quoting.
*/
func TestParse_Valid(t *testing.T) {
	const file = "\ufeffStory_Order,chapter_order,verse_number,story_title:en,text:en,text:fr\n" +
		"1,1,1,Genesis,\"In the beginning, God\",\n" +
		",,,,,\n" +
		"1,1,2,,The earth was void,La terre\n"

	rows, problems, err := bulkimport.Parse(strings.NewReader(file), bible)
	require.NoError(t, err)
	assert.Empty(t, problems)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, multilingual.Text{"en": "Genesis"}, rows[0].StoryTitle)
	assert.Equal(t, multilingual.Text{"en": "In the beginning, God"}, rows[0].Text)

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, 2, rows[1].VerseNumber)
	assert.Empty(t, rows[1].StoryTitle)
	assert.Equal(t, []string{"en", "fr"}, rows[1].Text.Codes())
}

/*
TestParse_HeaderProblems verifies that header errors stop row checks.
*/
func TestParse_HeaderProblems(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing_required", "story_order,verse_number,text:en", "Header: missing column chapter_order"},
		{"no_text", "story_order,chapter_order,verse_number,story_title:en", "Header: at least one text:<language> column is required"},
		{"unknown_column", "story_order,chapter_order,verse_number,text:en,notes", `Header: unknown column "notes"`},
		{"inactive_language", "story_order,chapter_order,verse_number,text:hi", `Header: column text:hi uses an unknown or inactive language "hi"`},
		{"duplicate_column", "story_order,chapter_order,verse_number,text:en,text:en", "Header: column text:en appears twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, problems, err := bulkimport.Parse(strings.NewReader(tt.header+"\n1,1,1,x\n"), bible)
			require.NoError(t, err)
			assert.Contains(t, problems, tt.want)
		})
	}
}

/*
TestParse_RowProblems verifies numbered row errors and duplicate detection.
*/
func TestParse_RowProblems(t *testing.T) {
	const file = "story_order,chapter_order,verse_number,text:en\n" +
		"1,1,1,In the beginning\n" +
		"1,x,2,Second\n" +
		"1,1,0,Zero\n" +
		"1,1,3,<p> </p>\n" +
		"1,1,1,Again\n" +
		"1,1\n"

	_, problems, err := bulkimport.Parse(strings.NewReader(file), bible)
	require.NoError(t, err)

	assert.Equal(t, []string{
		`Row 3: chapter_order must be a positive integer, got "x"`,
		`Row 4: verse_number must be a positive integer, got "0"`,
		"Row 5: text is required in at least one language",
		"Row 6: duplicates row 2 (story 1, chapter 1, verse 1)",
		"Row 7: expected 4 columns, found 2",
	}, problems)
}

/*
TestParse_Empty verifies the messages for empty inputs.
*/
func TestParse_Empty(t *testing.T) {
	_, problems, err := bulkimport.Parse(strings.NewReader(""), bible)
	require.NoError(t, err)
	assert.Equal(t, []string{"The file is empty"}, problems)

	_, problems, err = bulkimport.Parse(strings.NewReader("story_order,chapter_order,verse_number,text:en\n"), bible)
	require.NoError(t, err)
	assert.Equal(t, []string{"The file has no verse rows"}, problems)
}

/*
TestParse_CapsErrors verifies that long error lists are truncated.
*/
func TestParse_CapsErrors(t *testing.T) {
	var builder strings.Builder
	builder.WriteString("story_order,chapter_order,verse_number,text:en\n")
	for range 60 {
		builder.WriteString("0,1,1,x\n")
	}

	_, problems, err := bulkimport.Parse(strings.NewReader(builder.String()), bible)
	require.NoError(t, err)
	require.Len(t, problems, 51)
	assert.Equal(t, "...and 10 more errors", problems[50])
}
