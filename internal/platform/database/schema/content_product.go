// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentProductTable represents the 'content.product' table.
type ContentProductTable struct {
	Table       string
	ID          string
	Type        string
	Slug        string
	Title       string
	Description string
	ContentType string
	FreePages   string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// ContentProduct is the schema definition for content.product.
var ContentProduct = ContentProductTable{
	Table:       "content.product",
	ID:          "id",
	Type:        "type",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	ContentType: "contenttype",
	FreePages:   "freepages",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names in scan order.
func (t ContentProductTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.Slug, t.Title, t.Description, t.ContentType,
		t.FreePages, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
