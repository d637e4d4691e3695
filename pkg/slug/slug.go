// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Products carry a slug derived from their title in the first active language
// (English by default) so that readers can link to "/books/genesis" instead
// of a UUID.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds generated slugs; longer results are cut at a hyphen boundary.
const MaxLength = 80

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and drops combining marks (é → e).
// 2. Lowercases and replaces anything but letters and digits with hyphens.
// 3. Collapses runs of hyphens, trims the ends and caps at [MaxLength].
//
// Scripts with no ASCII decomposition (Devanagari, Hangul) produce "".
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > MaxLength {
		result = result[:MaxLength]
		if cut := strings.LastIndexByte(result, '-'); cut > 0 {
			result = result[:cut]
		}
	}

	return result
}

// FromFirst returns the slug of the first candidate that yields a non-empty one.
func FromFirst(candidates ...string) string {
	for _, candidate := range candidates {
		if s := From(candidate); s != "" {
			return s
		}
	}
	return ""
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
