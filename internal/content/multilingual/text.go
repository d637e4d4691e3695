// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package multilingual models per-language rich-text fields.

A [Text] maps a language code to an HTML fragment produced by the dashboard's
rich-text editor. Such editors emit markup like "<p><br></p>" for an empty
document, so emptiness is decided on the visible text, never on the raw string.

# Invariant

A code outside the active-language snapshot must never reach storage. Every
payload builder passes its fields through [Clean] before submission.
*/
package multilingual

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Text maps a language code to an HTML fragment.
type Text map[string]string

// Clone returns an independent copy. A nil Text clones to an empty one.
func (t Text) Clone() Text {
	out := make(Text, len(t))
	maps.Copy(out, t)
	return out
}

// Codes returns the keys in sorted order.
func (t Text) Codes() []string {
	return slices.Sorted(maps.Keys(t))
}

// # Emptiness

// IsEmpty reports whether an HTML fragment has no visible text.
//
// Tags, comments and the bodies of script and style elements are ignored.
// Entities are decoded before the check, so "<p>&nbsp;</p>" is empty while
// "<p>&amp;</p>" is not. Zero-width characters count as blank.
func IsEmpty(fragment string) bool {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	hidden := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way nothing visible was found.
			return true

		case html.StartTagToken:
			if isHiddenElement(tokenizer) {
				hidden++
			}

		case html.EndTagToken:
			if isHiddenElement(tokenizer) && hidden > 0 {
				hidden--
			}

		case html.TextToken:
			if hidden == 0 && hasVisibleRune(string(tokenizer.Text())) {
				return false
			}
		}
	}
}

func isHiddenElement(tokenizer *html.Tokenizer) bool {
	name, _ := tokenizer.TagName()
	switch string(name) {
	case "script", "style", "template":
		return true
	}
	return false
}

func hasVisibleRune(text string) bool {
	for _, r := range text {
		if unicode.IsSpace(r) || isZeroWidth(r) {
			continue
		}
		return true
	}
	return false
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
		return true
	}
	return false
}

// # Completeness

// IsComplete reports whether every code in required maps to a non-empty value.
// An empty required set is vacuously complete.
func IsComplete(field Text, required []string) bool {
	for _, code := range required {
		if IsEmpty(field[code]) {
			return false
		}
	}
	return true
}

// Policy selects how many configured languages a field must be filled in.
type Policy int

const (
	// RequireAll demands content in every configured language.
	RequireAll Policy = iota

	// RequireAny demands content in at least one configured language.
	RequireAny
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case RequireAll:
		return "all"
	case RequireAny:
		return "any"
	default:
		return "unknown"
	}
}

// Satisfied reports whether field meets the policy for the given codes.
func (p Policy) Satisfied(field Text, codes []string) bool {
	if p == RequireAny {
		for _, code := range codes {
			if !IsEmpty(field[code]) {
				return true
			}
		}
		return false
	}
	return IsComplete(field, codes)
}

// # Sanitization

// Clean returns a new Text holding only allowed codes with non-empty values.
// Disallowed and legacy codes are dropped silently. Values are not rewritten.
func Clean(field Text, allowed []string) Text {
	out := make(Text, len(allowed))
	for _, code := range allowed {
		if value, ok := field[code]; ok && !IsEmpty(value) {
			out[code] = value
		}
	}
	return out
}

// # Reporting

// MissingLanguageLabels lazily yields one label such as "Title (French)" per
// required code whose value is empty, in the order of required.
//
// names resolves a code to a display name; [LanguageSet.Name] is the usual
// argument. Callers typically stop after the first label.
func MissingLanguageLabels(field Text, required []string, fieldLabel string, names func(code string) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, code := range required {
			if !IsEmpty(field[code]) {
				continue
			}
			if !yield(fieldLabel + " (" + names(code) + ")") {
				return
			}
		}
	}
}
