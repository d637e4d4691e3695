// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err     *apperr.AppError
		code    string
		status  int
		message string
	}{
		{apperr.NotFound("Chapter"), apperr.CodeNotFound, http.StatusNotFound, "Chapter not found"},
		{apperr.Conflict("Language code already exists"), apperr.CodeConflict, http.StatusConflict, "Language code already exists"},
		{apperr.Unprocessable("Story does not exist"), apperr.CodeUnprocessable, http.StatusUnprocessableEntity, "Story does not exist"},
		{apperr.RateLimited(3), apperr.CodeRateLimited, http.StatusTooManyRequests, "Too many requests. Try again in 3s."},
		{apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestAs_FindsWrappedError(t *testing.T) {
	cause := errors.New("no rows")
	wrapped := fmt.Errorf("load verse: %w", apperr.NotFound("Verse").WithCause(cause))

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)

	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeConflict))
	assert.Nil(t, apperr.As(cause))
}

func TestWithCause_DoesNotMutateOriginal(t *testing.T) {
	base := apperr.Unauthorized("Invalid login credentials")
	withCause := base.WithCause(errors.New("bad hash"))

	assert.Nil(t, base.Cause)
	assert.NotNil(t, withCause.Cause)
	assert.Equal(t, base.Message, withCause.Message)
}
