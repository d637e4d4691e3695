// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/internal/users"
)

func newRouter(repo *fakeRepo, role sec.UserRole) http.Handler {
	handler := users.NewHandler(users.NewService(repo, &stubTokens{}, quiet))

	router := chi.NewRouter()
	handler.RegisterAuthRoutes(router)
	router.Group(func(protected chi.Router) {
		protected.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if role != "" {
					claims := &sec.AuthClaims{UserID: "admin-1", Role: role}
					request = request.WithContext(ctxutil.WithClaims(request.Context(), claims))
				}
				next.ServeHTTP(writer, request)
			})
		})
		handler.RegisterRoutes(protected)
	})
	return router
}

/*
TestHandler_Login verifies the public login route.
*/
func TestHandler_Login(t *testing.T) {
	repo := newFakeRepo()
	seed(t, repo, "u-1", "maria", sec.RoleEditor, true)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"maria","password":"correct-horse"}`))
	newRouter(repo, "").ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"accessToken":"token-u-1-editor"`)
	assert.NotContains(t, recorder.Body.String(), "correct-horse")

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"maria","password":"nope-nope"}`))
	newRouter(repo, "").ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestHandler_UsersNeedAdmin verifies role gating on /users.
*/
func TestHandler_UsersNeedAdmin(t *testing.T) {
	tests := []struct {
		role   sec.UserRole
		status int
	}{
		{"", http.StatusUnauthorized},
		{sec.RoleViewer, http.StatusForbidden},
		{sec.RoleEditor, http.StatusForbidden},
		{sec.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			recorder := httptest.NewRecorder()
			newRouter(newFakeRepo(), tt.role).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestHandler_DeleteSelf verifies that the acting admin comes from the token.
*/
func TestHandler_DeleteSelf(t *testing.T) {
	repo := newFakeRepo()
	seed(t, repo, "admin-1", "root", sec.RoleAdmin, true)
	seed(t, repo, "u-2", "maria", sec.RoleEditor, true)

	recorder := httptest.NewRecorder()
	newRouter(repo, sec.RoleAdmin).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/users/admin-1", nil))
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = httptest.NewRecorder()
	newRouter(repo, sec.RoleAdmin).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/users/u-2", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, repo.users, "u-2")
}
