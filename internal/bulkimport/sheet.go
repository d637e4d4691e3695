// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bulkimport loads a book's stories, chapters and verses from CSV.

# File format

The first record is a header. Three columns are required and any number of
multilingual columns follow, named "<field>:<language code>":

	story_order,chapter_order,verse_number,story_title:en,chapter_title:en,text:en,text:fr
	1,1,1,Genesis,The Creation,In the beginning...,Au commencement...

Fields are story_title, chapter_title and text. At least one text column is
required. Each row is one verse. Stories and chapters are found by order and
created when missing; verses are found by number and their text is merged
language by language.
*/
package bulkimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taibuivan/bibble/internal/content/multilingual"
)

// Column names.
const (
	ColumnStoryOrder   = "story_order"
	ColumnChapterOrder = "chapter_order"
	ColumnVerseNumber  = "verse_number"

	FieldStoryTitle   = "story_title"
	FieldChapterTitle = "chapter_title"
	FieldText         = "text"
)

// maxReportedErrors caps the error list of a report.
const maxReportedErrors = 50

// Row is one verse record. Line is the 1-based record number, header included.
type Row struct {
	Line         int
	StoryOrder   int
	ChapterOrder int
	VerseNumber  int
	StoryTitle   multilingual.Text
	ChapterTitle multilingual.Text
	Text         multilingual.Text
}

// position is where a verse lands in the hierarchy.
type position struct {
	story, chapter, verse int
}

// textColumn maps a header cell onto a multilingual field and language.
type textColumn struct {
	index int
	field string
	code  string
}

// problems collects row errors up to maxReportedErrors.
type problems struct {
	list    []string
	dropped int
}

func (p *problems) add(format string, args ...any) {
	if len(p.list) >= maxReportedErrors {
		p.dropped++
		return
	}
	p.list = append(p.list, fmt.Sprintf(format, args...))
}

func (p *problems) empty() bool {
	return len(p.list) == 0
}

func (p *problems) messages() []string {
	out := append([]string{}, p.list...)
	if p.dropped > 0 {
		out = append(out, fmt.Sprintf("...and %d more errors", p.dropped))
	}
	return out
}

/*
Parse reads a CSV file into rows, checking it against the allowed languages.

Returns:
  - []Row: every row that passed its checks
  - []string: human-readable problems, empty when the file is valid
  - error: only for unreadable input
*/
func Parse(file io.Reader, allowed multilingual.LanguageSet) ([]Row, []string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var found problems

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, []string{"The file is empty"}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	required, columns := parseHeader(header, allowed, &found)
	if !found.empty() {
		return nil, found.messages(), nil
	}

	var (
		rows []Row
		seen = map[position]int{}
		line = 1
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			found.add("Row %d: %v", line, parseErr.Err)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", line, err)
		}

		if isBlank(record) {
			continue
		}
		if len(record) != len(header) {
			found.add("Row %d: expected %d columns, found %d", line, len(header), len(record))
			continue
		}

		row, ok := parseRow(line, record, required, columns, allowed, &found)
		if !ok {
			continue
		}

		at := position{row.StoryOrder, row.ChapterOrder, row.VerseNumber}
		if first, dup := seen[at]; dup {
			found.add("Row %d: duplicates row %d (story %d, chapter %d, verse %d)", line, first, at.story, at.chapter, at.verse)
			continue
		}
		seen[at] = line

		rows = append(rows, row)
	}

	if found.empty() && len(rows) == 0 {
		found.add("The file has no verse rows")
	}
	return rows, found.messages(), nil
}

func parseHeader(header []string, allowed multilingual.LanguageSet, found *problems) (map[string]int, []textColumn) {
	required := map[string]int{}
	seen := map[string]bool{}
	var columns []textColumn
	hasText := false

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))

		switch name {
		case ColumnStoryOrder, ColumnChapterOrder, ColumnVerseNumber:
			if _, dup := required[name]; dup {
				found.add("Header: column %s appears twice", name)
			}
			required[name] = i
			continue
		}

		field, code, ok := strings.Cut(name, ":")
		if !ok || (field != FieldStoryTitle && field != FieldChapterTitle && field != FieldText) {
			found.add("Header: unknown column %q", cell)
			continue
		}
		if !allowed.Contains(code) {
			found.add("Header: column %s uses an unknown or inactive language %q", name, code)
			continue
		}
		if seen[name] {
			found.add("Header: column %s appears twice", name)
			continue
		}
		seen[name] = true

		hasText = hasText || field == FieldText
		columns = append(columns, textColumn{index: i, field: field, code: code})
	}

	for _, name := range []string{ColumnStoryOrder, ColumnChapterOrder, ColumnVerseNumber} {
		if _, ok := required[name]; !ok {
			found.add("Header: missing column %s", name)
		}
	}
	if !hasText {
		found.add("Header: at least one text:<language> column is required")
	}

	return required, columns
}

func parseRow(line int, record []string, required map[string]int, columns []textColumn, allowed multilingual.LanguageSet, found *problems) (Row, bool) {
	row := Row{
		Line:         line,
		StoryTitle:   multilingual.Text{},
		ChapterTitle: multilingual.Text{},
		Text:         multilingual.Text{},
	}
	ok := true

	number := func(column string) int {
		raw := strings.TrimSpace(record[required[column]])
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			found.add("Row %d: %s must be a positive integer, got %q", line, column, raw)
			ok = false
		}
		return n
	}

	row.StoryOrder = number(ColumnStoryOrder)
	row.ChapterOrder = number(ColumnChapterOrder)
	row.VerseNumber = number(ColumnVerseNumber)

	for _, column := range columns {
		value := record[column.index]
		switch column.field {
		case FieldStoryTitle:
			row.StoryTitle[column.code] = value
		case FieldChapterTitle:
			row.ChapterTitle[column.code] = value
		case FieldText:
			row.Text[column.code] = value
		}
	}

	row.StoryTitle = allowed.Clean(row.StoryTitle)
	row.ChapterTitle = allowed.Clean(row.ChapterTitle)
	row.Text = allowed.Clean(row.Text)

	if len(row.Text) == 0 {
		found.add("Row %d: text is required in at least one language", line)
		ok = false
	}

	return row, ok
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
