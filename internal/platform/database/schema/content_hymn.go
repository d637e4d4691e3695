// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentHymnTable represents the 'content.hymn' table.
type ContentHymnTable struct {
	Table     string
	ID        string
	ProductID string
	Number    string
	Text      string
	CreatedAt string
	UpdatedAt string
}

// ContentHymn is the schema definition for content.hymn.
var ContentHymn = ContentHymnTable{
	Table:     "content.hymn",
	ID:        "id",
	ProductID: "productid",
	Number:    "number",
	Text:      "text",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names in scan order.
func (t ContentHymnTable) Columns() []string {
	return []string{t.ID, t.ProductID, t.Number, t.Text, t.CreatedAt, t.UpdatedAt}
}
