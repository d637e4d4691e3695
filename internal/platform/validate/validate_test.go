// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "productId", "0192f4a0-0000-7000-8000-000000000001", false},
		{"empty_string", "productId", "", true},
		{"whitespace_only", "productId", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Ordinals checks the positive/non-negative rules used for order and number fields.
*/
func TestValidator_Ordinals(t *testing.T) {
	tests := []struct {
		name     string
		run      func(v *validate.Validator)
		hasError bool
	}{
		{"positive_one", func(v *validate.Validator) { v.Positive("order", 1) }, false},
		{"positive_zero", func(v *validate.Validator) { v.Positive("order", 0) }, true},
		{"positive_negative", func(v *validate.Validator) { v.Positive("number", -3) }, true},
		{"non_negative_zero", func(v *validate.Validator) { v.NonNegative("freePages", 0) }, false},
		{"non_negative_negative", func(v *validate.Validator) { v.NonNegative("freePages", -1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.run(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_LanguageCode checks language code formats.
*/
func TestValidator_LanguageCode(t *testing.T) {
	for _, code := range []string{"en", "sw", "rn", "pt-br"} {
		v := &validate.Validator{}
		v.LanguageCode("code", code)
		assert.False(t, v.HasErrors(), code)
	}

	for _, code := range []string{"", "EN", "english", "e"} {
		v := &validate.Validator{}
		v.LanguageCode("code", code)
		assert.True(t, v.HasErrors(), code)
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain and the envelope message.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("storyId", "").
		Positive("order", 0).
		OneOf("status", "archived", "active", "inactive", "draft").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "storyId: This field is required", ae.Message)
}

/*
TestFail builds a single-field error with the field in the message.
*/
func TestFail(t *testing.T) {
	err := validate.Fail("file", "A file is required")

	assert.Equal(t, apperr.CodeValidation, err.Code)
	assert.Equal(t, "file: A file is required", err.Message)
	assert.Equal(t, []apperr.FieldError{{Field: "file", Message: "A file is required"}}, err.Details)
}

/*
TestValidator_Account covers the rules used for user accounts.
*/
func TestValidator_Account(t *testing.T) {
	v := &validate.Validator{}
	v.MinLen("username", "ab", 3).
		MaxLen("username", "abc", 64).
		Email("email", "not-an-address").
		Email("email", "grace@bibble.app")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, []apperr.FieldError{
		{Field: "username", Message: "Minimum 3 characters"},
		{Field: "email", Message: "Must be a valid email address"},
	}, ae.Details)
}
