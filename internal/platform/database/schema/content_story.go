// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentStoryTable represents the 'content.story' table.
type ContentStoryTable struct {
	Table       string
	ID          string
	ProductID   string
	Title       string
	Description string
	Order       string
	CreatedAt   string
	UpdatedAt   string
}

// ContentStory is the schema definition for content.story.
var ContentStory = ContentStoryTable{
	Table:       "content.story",
	ID:          "id",
	ProductID:   "productid",
	Title:       "title",
	Description: "description",
	Order:       "ordinal",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names in scan order.
func (t ContentStoryTable) Columns() []string {
	return []string{t.ID, t.ProductID, t.Title, t.Description, t.Order, t.CreatedAt, t.UpdatedAt}
}
