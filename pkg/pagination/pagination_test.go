// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: 20}},
		{"?page=3&limit=50", pagination.Params{Page: 3, Limit: 50}},
		{"?page=2&limit=1000", pagination.Params{Page: 2, Limit: 100}},
		{"?page=-1&limit=0", pagination.Params{Page: 1, Limit: 20}},
		{"?page=abc&limit=ten", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		request := httptest.NewRequest("GET", "/api/v1/products"+tt.query, nil)
		assert.Equal(t, tt.want, pagination.FromRequest(request), tt.query)
	}
}

func TestParams_OffsetAndMeta(t *testing.T) {
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())

	assert.Equal(t, pagination.Meta{Page: 1, Limit: 20, Total: 41, TotalPages: 3}, pagination.Params{Page: 1, Limit: 20}.Meta(41))
	assert.Equal(t, 0, pagination.Params{Page: 1}.Meta(41).TotalPages)
}
