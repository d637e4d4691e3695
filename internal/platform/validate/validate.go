// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate collects field failures for the API's service layer and
turns them into one VALIDATION_ERROR.

Unlike the dashboard form controller, which stops at the first violation,
a [Validator] keeps going so the response lists every bad field.

	v := &validate.Validator{}
	v.Required("name", l.Name).MaxLen("name", l.Name, 64)
	v.LanguageCode("code", l.Code)
	return v.Err()
*/
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/bibble/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body does not decode.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// languageCode accepts "en", "fil" and regional forms like "pt-br".
var languageCode = regexp.MustCompile(`^[a-z]{2,3}(?:-[a-z0-9]{2,8})?$`)

// Validator accumulates failures. The zero value is ready to use; use one per
// request.
type Validator struct {
	failures []apperr.FieldError
}

func (v *Validator) Required(field, value string) *Validator {
	return v.Custom(field, strings.TrimSpace(value) == "", "This field is required")
}

// MinLen and MaxLen count runes, not bytes.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) < min, fmt.Sprintf("Minimum %d characters", min))
}

func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) > max, fmt.Sprintf("Maximum %d characters", max))
}

// Positive guards orders and numbers, which start at 1.
func (v *Validator) Positive(field string, value int) *Validator {
	return v.Custom(field, value < 1, "Must be a positive number")
}

func (v *Validator) NonNegative(field string, value int) *Validator {
	return v.Custom(field, value < 0, "Cannot be negative")
}

func (v *Validator) Email(field, value string) *Validator {
	_, err := mail.ParseAddress(value)
	return v.Custom(field, err != nil, "Must be a valid email address")
}

func (v *Validator) LanguageCode(field, value string) *Validator {
	return v.Custom(field, !languageCode.MatchString(value), `Must be a lowercase language code such as "en" or "sw"`)
}

func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.Custom(field, !slices.Contains(allowed, value), "Must be one of: "+strings.Join(allowed, ", "))
}

// Custom records message against field when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Err returns nil when every rule passed. Otherwise the error's message names
// the first failure and its details carry all of them.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return newError(v.failures[0], v.failures...)
}

// Fail builds a validation error for a single field.
func Fail(field, message string) *apperr.AppError {
	failure := apperr.FieldError{Field: field, Message: message}
	return newError(failure, failure)
}

func newError(headline apperr.FieldError, all ...apperr.FieldError) *apperr.AppError {
	return apperr.ValidationError(headline.Field+": "+headline.Message, all...)
}
