// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hierarchy

import (
	"cmp"
	"slices"
	"time"

	"github.com/taibuivan/bibble/internal/content/multilingual"
	"github.com/taibuivan/bibble/internal/platform/validate"
)

// Language is the configuration entity that decides which keys a
// [multilingual.Text] must carry to be complete.
type Language struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Symbol    string    `json:"symbol"`
	IsActive  bool      `json:"isActive"`
	IsDefault bool      `json:"isDefault"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (l Language) Identity() string { return l.ID }

// Validate checks the code format and name.
func (l Language) Validate() error {
	v := &validate.Validator{}
	v.Required("name", l.Name).MaxLen("name", l.Name, 64)
	v.LanguageCode("code", l.Code)
	v.MaxLen("symbol", l.Symbol, 8)
	v.Custom("isDefault", l.IsDefault && !l.IsActive, "The default language must be active")
	return v.Err()
}

// ActiveSet snapshots the active languages ordered by SortOrder then Code.
func ActiveSet(languages []Language) multilingual.LanguageSet {
	active := make([]Language, 0, len(languages))
	for _, lang := range languages {
		if lang.IsActive {
			active = append(active, lang)
		}
	}

	slices.SortStableFunc(active, func(a, b Language) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.Code, b.Code))
	})

	entries := make([]multilingual.Language, len(active))
	for i, lang := range active {
		entries[i] = multilingual.Language{Code: lang.Code, Name: lang.Name}
	}
	return multilingual.NewLanguageSet(entries...)
}
