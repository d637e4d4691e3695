// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/constants"
	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/metrics"
	"github.com/taibuivan/bibble/internal/platform/middleware"
	"github.com/taibuivan/bibble/internal/platform/sec"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (s stubVerifier) Verify(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.claims, nil
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.RequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "client-id")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "client-id", seen)
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	verifier := stubVerifier{claims: &sec.AuthClaims{UserID: "u-1", Role: sec.RoleViewer}}
	chain := middleware.Authenticate(verifier)(middleware.RequireRole(sec.RoleEditor)(okHandler))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"malformed", "Token good", http.StatusUnauthorized},
		{"invalid", "Bearer bad", http.StatusUnauthorized},
		{"insufficient_role", "Bearer good", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/v1/stories", nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			recorder := httptest.NewRecorder()
			chain.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	editor := stubVerifier{claims: &sec.AuthClaims{UserID: "u-2", Role: sec.RoleAdmin}}
	request := httptest.NewRequest(http.MethodPost, "/api/v1/stories", nil)
	request.Header.Set(constants.HeaderAuthorization, "bearer good")
	recorder := httptest.NewRecorder()
	middleware.Authenticate(editor)(middleware.RequireRole(sec.RoleEditor)(okHandler)).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAuth_AdmitsAnyRole(t *testing.T) {
	viewer := stubVerifier{claims: &sec.AuthClaims{UserID: "u-3", Role: sec.RoleViewer}}
	chain := middleware.Authenticate(viewer)(middleware.RequireAuth(okHandler))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer good")
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 1, 2)
	handler := limiter.Handler(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRealIP, "10.0.0.1")
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	m := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.Instrument(m))
	router.Get("/stories/{id}", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/def", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/stories/{id}", "200")))
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXForwardedFor, "1.1.1.1, 2.2.2.2")
	assert.Equal(t, "1.1.1.1", middleware.RealIP(request))

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "9.9.9.9:1234"
	assert.Equal(t, "9.9.9.9", middleware.RealIP(request))
}
