// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/dberr"
)

/*
TestWrap_Classification maps driver errors onto application error codes.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, apperr.CodeConflict},
		{"foreign_key", &pgconn.PgError{Code: "23503"}, apperr.CodeUnprocessable},
		{"check", &pgconn.PgError{Code: "23514"}, apperr.CodeValidation},
		{"malformed_uuid", &pgconn.PgError{Code: "22P02"}, apperr.CodeNotFound},
		{"other", errors.New("connection reset"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "Chapter", "find_chapter")
			assert.True(t, apperr.HasCode(err, tt.code))
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "Chapter", "find_chapter"))
	assert.Equal(t, "Chapter not found", dberr.Wrap(pgx.ErrNoRows, "Chapter", "find").Error())
}

/*
TestWrapDelete_ForeignKey maps a restricted delete onto a conflict.
*/
func TestWrapDelete_ForeignKey(t *testing.T) {
	err := dberr.WrapDelete(&pgconn.PgError{Code: "23503"}, "Story", "delete_story")
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, "Story still has content attached", err.Error())

	assert.True(t, apperr.HasCode(dberr.WrapDelete(pgx.ErrNoRows, "Story", "delete_story"), apperr.CodeNotFound))
	assert.NoError(t, dberr.WrapDelete(nil, "Story", "delete_story"))
}
