// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentChapterTable represents the 'content.chapter' table.
type ContentChapterTable struct {
	Table     string
	ID        string
	StoryID   string
	Title     string
	Order     string
	CreatedAt string
	UpdatedAt string
}

// ContentChapter is the schema definition for content.chapter.
var ContentChapter = ContentChapterTable{
	Table:     "content.chapter",
	ID:        "id",
	StoryID:   "storyid",
	Title:     "title",
	Order:     "ordinal",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names in scan order.
func (t ContentChapterTable) Columns() []string {
	return []string{t.ID, t.StoryID, t.Title, t.Order, t.CreatedAt, t.UpdatedAt}
}
