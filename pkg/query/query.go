// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued URL query parameters.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values into integers. Invalid entries are skipped.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string into a trimmed,
// lowercased and de-duplicated slice of strings, preserving first occurrence order.
//
//	StringSlice("Book, song,book") // ["book", "song"]
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.ToLower(strings.TrimSpace(v))
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		res = append(res, clean)
	}
	return res
}
