// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil carries per-request values through [context.Context]: the
correlation ID, the request-scoped logger and the signed-in dashboard user.

Middleware sets them once at the edge; services only read them, mostly to
stamp the acting user on write logs.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bibble/internal/platform/sec"
)

// key is unexported so no other package can collide with these entries.
type key int

const (
	requestIDKey key = iota
	loggerKey
	claimsKey
)

// # Correlation

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the X-Request-ID of the current request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// # Logging

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request logger, falling back to [slog.Default] outside
// of a request.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// # Identity

func WithClaims(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Claims returns the verified token claims, or nil for anonymous requests.
func Claims(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(claimsKey).(*sec.AuthClaims)
	return claims
}

// Actor returns the signed-in user's ID, or "" when nobody is signed in.
func Actor(ctx context.Context) string {
	if claims := Claims(ctx); claims != nil {
		return claims.UserID
	}
	return ""
}

// ActorAttr is the slog attribute write logs carry to name who made a change.
func ActorAttr(ctx context.Context) slog.Attr {
	return slog.String("actor_id", Actor(ctx))
}
