// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by the Bibble services and the
response writer.

An [AppError] carries a machine code, an HTTP status and a message that is
safe to show in the dashboard's notification. Services return AppErrors;
[respond.Error] renders them and turns anything else into INTERNAL_ERROR.

# Codes

	NOT_FOUND            404  missing entity, or an id that is not a UUID
	UNAUTHORIZED         401  missing, expired or rejected credentials
	FORBIDDEN            403  role below the route's minimum
	CONFLICT             409  duplicate key, or a delete blocked by children
	VALIDATION_ERROR     400  field failures, listed under details
	UNPROCESSABLE        422  a parent that does not exist
	PAYLOAD_TOO_LARGE    413  import file over the limit
	RATE_LIMITED         429
	INTERNAL_ERROR       500  cause is logged, never sent
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnprocessable   = "UNPROCESSABLE"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is a client-safe error. Cause stays on the server.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failed field, keyed by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e that wraps cause.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NotFound names the missing resource: NotFound("Story") reads "Story not found".
func NotFound(resource string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, resource+" not found")
}

func Unauthorized(message string) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return newError(CodeForbidden, http.StatusForbidden, message)
}

func Conflict(message string) *AppError {
	return newError(CodeConflict, http.StatusConflict, message)
}

func ValidationError(message string, details ...FieldError) *AppError {
	e := newError(CodeValidation, http.StatusBadRequest, message)
	e.Details = details
	return e
}

func Unprocessable(message string) *AppError {
	return newError(CodeUnprocessable, http.StatusUnprocessableEntity, message)
}

func PayloadTooLarge(message string) *AppError {
	return newError(CodePayloadTooLarge, http.StatusRequestEntityTooLarge, message)
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError(CodeRateLimited, http.StatusTooManyRequests,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	e := newError(CodeInternal, http.StatusInternalServerError, "An unexpected error occurred")
	e.Cause = cause
	return e
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err's chain holds an [*AppError] with code.
func HasCode(err error, code string) bool {
	appErr := As(err)
	return appErr != nil && appErr.Code == code
}
