// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/constants"
	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/respond"
	"github.com/taibuivan/bibble/internal/platform/sec"
)

// TokenVerifier is the part of [sec.TokenService] the middleware needs.
type TokenVerifier interface {
	Verify(raw string) (*sec.AuthClaims, error)
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
// ok is false when the header is present but malformed.
func bearerToken(header string) (token string, present, ok bool) {
	if header == "" {
		return "", false, true
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", true, false
	}
	return token, true, true
}

/*
Authenticate resolves the caller from the bearer token.

A request without an Authorization header passes through anonymous and is
turned away later by [RequireAuth] or [RequireRole]. A malformed header or a
token that fails verification answers 401 at once. Otherwise the claims go
into the context and the request logger gains user_id and role.
*/
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, present, ok := bearerToken(request.Header.Get(constants.HeaderAuthorization))
			switch {
			case !present:
				next.ServeHTTP(writer, request)
				return
			case !ok:
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				ctxutil.Logger(request.Context()).Debug("token_rejected", slog.Any("error", err))
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithClaims(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.Logger(ctx).With(
				slog.String("user_id", claims.UserID),
				slog.String("role", string(claims.Role)),
			))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth admits any signed-in role. Mount it after [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return RequireRole(sec.RoleViewer)(next)
}

// RequireRole answers 401 for anonymous callers and 403 for roles below role.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.Claims(request.Context())
			switch {
			case claims == nil:
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			case !claims.Role.AtLeast(role):
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			default:
				next.ServeHTTP(writer, request)
			}
		})
	}
}
