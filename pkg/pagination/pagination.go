// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination resolves page windows for the product listing.
//
// Only products are paged. Story, chapter, verse and hymn listings are scoped
// to one parent and returned whole, because the admin tree and the ordinal
// sequencer both need every sibling at once.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	// MaxLimit caps oversized requests rather than rejecting them.
	MaxLimit = 100
)

// Params is a resolved page window. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Meta is the "meta" block of a paged response.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// FromRequest reads "page" and "limit" from the query string.
func FromRequest(request *http.Request) Params {
	return Parse(request.URL.Query())
}

// Parse resolves a window from query values. Missing or malformed values take
// the defaults and a limit above [MaxLimit] is clamped to it.
func Parse(query url.Values) Params {
	params := Params{Page: positive(query.Get("page"), 1), Limit: positive(query.Get("limit"), DefaultLimit)}
	params.Limit = min(params.Limit, MaxLimit)
	return params
}

// Offset is the number of rows before this page.
func (p Params) Offset() int {
	return max(p.Page-1, 0) * p.Limit
}

// Meta describes this window over total rows.
func (p Params) Meta(total int) Meta {
	meta := Meta{Page: p.Page, Limit: p.Limit, Total: total}
	if p.Limit > 0 {
		meta.TotalPages = (total + p.Limit - 1) / p.Limit
	}
	return meta
}

func positive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
