// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentVerseTable represents the 'content.verse' table.
type ContentVerseTable struct {
	Table     string
	ID        string
	ChapterID string
	Number    string
	Text      string
	CreatedAt string
	UpdatedAt string
}

// ContentVerse is the schema definition for content.verse.
var ContentVerse = ContentVerseTable{
	Table:     "content.verse",
	ID:        "id",
	ChapterID: "chapterid",
	Number:    "number",
	Text:      "text",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names in scan order.
func (t ContentVerseTable) Columns() []string {
	return []string{t.ID, t.ChapterID, t.Number, t.Text, t.CreatedAt, t.UpdatedAt}
}
