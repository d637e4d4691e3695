// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/bibble/internal/platform/apperr"
	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/sec"
	"github.com/taibuivan/bibble/internal/platform/validate"
	"github.com/taibuivan/bibble/pkg/query"
)

// maxJSONBytes caps JSON request bodies. Rich-text verse bodies are small but
// a chapter description with inline markup can run to a few hundred KB.
const maxJSONBytes = 2 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	body := io.LimitReader(request.Body, maxJSONBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
List retrieves a comma-separated query parameter as a trimmed list.
*/
func List(request *http.Request, name string) []string {
	return query.StringSlice(request.URL.Query().Get(name))
}

/*
File opens the named multipart file from a request, enforcing maxBytes.

Returns:
  - io.ReadCloser: the uploaded file, which the caller must close
  - string: the client-supplied filename
  - error: validation or size errors as [apperr.AppError]
*/
func File(writer http.ResponseWriter, request *http.Request, field string, maxBytes int64) (io.ReadCloser, string, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBytes)

	if err := request.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", apperr.PayloadTooLarge("Uploaded file is too large")
		}
		return nil, "", validate.Fail(field, "A multipart file upload is required")
	}

	file, header, err := request.FormFile(field)
	if err != nil {
		return nil, "", validate.Fail(field, "A file is required")
	}

	return file, header.Filename, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.Claims(request.Context())
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims := ctxutil.Claims(request.Context())
	if claims == nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	return claims.UserID, nil
}
