// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreLanguageTable represents the 'core.language' table.
type CoreLanguageTable struct {
	Table     string
	ID        string
	Name      string
	Code      string
	Symbol    string
	IsActive  string
	IsDefault string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// CoreLanguage is the schema definition for core.language.
var CoreLanguage = CoreLanguageTable{
	Table:     "core.language",
	ID:        "id",
	Name:      "name",
	Code:      "code",
	Symbol:    "symbol",
	IsActive:  "isactive",
	IsDefault: "isdefault",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names in scan order.
func (t CoreLanguageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.Symbol, t.IsActive, t.IsDefault, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}
