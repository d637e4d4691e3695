// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taibuivan/bibble/internal/platform/apperr"
)

// SQLSTATE codes the content stores care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	// A malformed UUID in a path can never match a row.
	codeInvalidText = "22P02"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// resource names the entity for not-found messages ("Story", "Chapter").
// action is recorded in the cause for server-side logs only.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	cause := fmt.Errorf("%s: %w", action, err)

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource).WithCause(cause)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidText:
			return apperr.NotFound(resource).WithCause(cause)
		case codeUniqueViolation:
			return apperr.Conflict(resource + " already exists").WithCause(cause)
		case codeForeignKeyViolation:
			return apperr.Unprocessable(resource + " references a parent that does not exist").WithCause(cause)
		case codeCheckViolation:
			return apperr.ValidationError(resource + " violates a data constraint").WithCause(cause)
		}
	}

	return apperr.Internal(cause)
}

// WrapDelete is [Wrap] for deletes, where a foreign key violation means the
// row still has children rather than a missing parent.
func WrapDelete(err error, resource, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return apperr.Conflict(resource + " still has content attached").WithCause(fmt.Errorf("%s: %w", action, err))
	}
	return Wrap(err, resource, action)
}
