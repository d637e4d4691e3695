// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"errors"
	"net/http"
)

// NetworkFallback is shown when a failure carries no backend message.
const NetworkFallback = "Network error, please check your connection"

// ErrNotFound matches any [*Error] with a 404 status via errors.Is.
var ErrNotFound = errors.New("gateway: not found")

// Error is a failed backend call.
type Error struct {
	// Message is the backend's envelope message, if any.
	Message string
	// Status is the HTTP status, or 0 when no response arrived.
	Status int
	// Code is the backend's machine-readable error code, if any.
	Code string
	// Cause is the transport or decoding error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return "gateway: " + e.Cause.Error()
	}
	return NetworkFallback
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Message returns the text to show the user for err: the backend message
// when there is one, otherwise [NetworkFallback].
func Message(err error) string {
	var gatewayErr *Error
	if errors.As(err, &gatewayErr) && gatewayErr.Message != "" {
		return gatewayErr.Message
	}
	return NetworkFallback
}

// # Envelope

// Envelope is the wire shape of every backend response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Result is either a value or an [*Error], never both.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure. A nil err becomes a bare [NetworkFallback] failure.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{}
	}
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Unwrap returns the value, or the zero value and the failure.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Decode converts a decoded envelope and its HTTP status into a [Result].
// A 2xx status with success=false is still a failure, and so is a non-2xx
// status whatever the envelope claims.
func Decode[T any](envelope Envelope[T], status int) Result[T] {
	if envelope.Success && status >= 200 && status < 300 {
		return Ok(envelope.Data)
	}
	return Fail[T](&Error{Message: envelope.Message, Status: status, Code: envelope.Code})
}
