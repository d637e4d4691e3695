// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multilingual

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// BibleExcluded is the language code left out of Bible content workflows.
const BibleExcluded = "hi"

// Language is one entry of a [LanguageSet].
type Language struct {
	Code string
	Name string
}

// LanguageSet is an immutable snapshot of the active languages for one screen.
//
// Forms receive it at construction so two screens never observe each other's
// language configuration mid-edit.
type LanguageSet struct {
	entries []Language
}

// NewLanguageSet builds a set in the given order. Blank and duplicate codes are skipped.
func NewLanguageSet(languages ...Language) LanguageSet {
	entries := make([]Language, 0, len(languages))
	for _, lang := range languages {
		code := strings.TrimSpace(lang.Code)
		if code == "" || slices.ContainsFunc(entries, func(e Language) bool { return e.Code == code }) {
			continue
		}
		entries = append(entries, Language{Code: code, Name: lang.Name})
	}
	return LanguageSet{entries: entries}
}

// Codes returns the language codes in configured order.
func (s LanguageSet) Codes() []string {
	codes := make([]string, len(s.entries))
	for i, entry := range s.entries {
		codes[i] = entry.Code
	}
	return codes
}

// Len returns the number of languages.
func (s LanguageSet) Len() int {
	return len(s.entries)
}

// Contains reports whether code is in the set.
func (s LanguageSet) Contains(code string) bool {
	return slices.ContainsFunc(s.entries, func(e Language) bool { return e.Code == code })
}

// Name returns the configured display name for code. Codes without one fall
// back to the English CLDR name, then to the upper-cased code.
func (s LanguageSet) Name(code string) string {
	for _, entry := range s.entries {
		if entry.Code == code && entry.Name != "" {
			return entry.Name
		}
	}

	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}

	return strings.ToUpper(code)
}

// Without returns a copy of the set minus the given codes.
func (s LanguageSet) Without(codes ...string) LanguageSet {
	entries := make([]Language, 0, len(s.entries))
	for _, entry := range s.entries {
		if !slices.Contains(codes, entry.Code) {
			entries = append(entries, entry)
		}
	}
	return LanguageSet{entries: entries}
}

// ForBible returns the set used by story, chapter and verse screens.
func (s LanguageSet) ForBible() LanguageSet {
	return s.Without(BibleExcluded)
}

// Backfill returns a copy of field with an entry for every code in the set,
// defaulting to "". Existing entries, including foreign codes, are kept.
func (s LanguageSet) Backfill(field Text) Text {
	out := field.Clone()
	for _, entry := range s.entries {
		if _, ok := out[entry.Code]; !ok {
			out[entry.Code] = ""
		}
	}
	return out
}

// Clean is [Clean] against this set's codes.
func (s LanguageSet) Clean(field Text) Text {
	return Clean(field, s.Codes())
}
