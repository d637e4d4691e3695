// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/api"
	"github.com/taibuivan/bibble/internal/bulkimport"
	"github.com/taibuivan/bibble/internal/catalog"
	"github.com/taibuivan/bibble/internal/language"
	"github.com/taibuivan/bibble/internal/platform/config"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/internal/users"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*sec.AuthClaims, error) {
	role := sec.UserRole(token)
	if !role.IsValid() {
		return nil, errors.New("bad token")
	}
	return &sec.AuthClaims{UserID: "u-1", Role: role}, nil
}

// newServer wires the router with handlers whose services are never reached:
// every request below is answered by middleware or request decoding.
func newServer(t *testing.T) http.Handler {
	t.Helper()

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, quiet)
	cfg := &config.Config{ServerPort: "0", AllowedOrigins: []string{"http://localhost:3000"}}

	server := api.NewServer(t.Context(), cfg, quiet, stubVerifier{}, metrics.New(), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Users:     users.NewHandler(nil),
		Catalog:   catalog.NewHandler(nil),
		Languages: language.NewHandler(nil),
		Imports:   bulkimport.NewHandler(nil),
	})
	return server.Handler()
}

/*
TestServer_Routing verifies the public, protected and infrastructure routes.
*/
func TestServer_Routing(t *testing.T) {
	handler := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"ready_without_checks", http.MethodGet, "/ready", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"anonymous_products", http.MethodGet, "/api/v1/products", "", "", http.StatusUnauthorized},
		{"anonymous_languages", http.MethodGet, "/api/v1/languages", "", "", http.StatusUnauthorized},
		{"bad_token", http.MethodGet, "/api/v1/products", "nope", "", http.StatusUnauthorized},
		{"viewer_users", http.MethodGet, "/api/v1/users", "viewer", "", http.StatusForbidden},
		{"viewer_import", http.MethodPost, "/api/v1/imports/validate", "viewer", "", http.StatusForbidden},
		{"editor_language_write", http.MethodPost, "/api/v1/languages", "editor", "{}", http.StatusForbidden},
		{"login_is_public", http.MethodPost, "/api/v1/auth/login", "", "not json", http.StatusBadRequest},
		{"unknown_route", http.MethodGet, "/api/v1/comics", "viewer", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestServer_CORS verifies that a preflight from an allowed origin is answered.
*/
func TestServer_CORS(t *testing.T) {
	request := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	recorder := httptest.NewRecorder()
	newServer(t).ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

/*
TestReadiness_Degraded verifies that a failing dependency answers 503.
*/
func TestReadiness_Degraded(t *testing.T) {
	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	}, quiet)

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":false`)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}
