// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/ctxutil"
	"github.com/taibuivan/bibble/internal/platform/sec"
)

/*
TestContext_Defaults verifies what a bare context yields outside of a request.
*/
func TestContext_Defaults(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.RequestID(ctx))
	assert.Same(t, slog.Default(), ctxutil.Logger(ctx))
	assert.Nil(t, ctxutil.Claims(ctx))
	assert.Empty(t, ctxutil.Actor(ctx))
	assert.Equal(t, slog.String("actor_id", ""), ctxutil.ActorAttr(ctx))
}

/*
TestContext_RequestValues verifies values set by middleware are read back.
*/
func TestContext_RequestValues(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	claims := &sec.AuthClaims{UserID: "editor-7", Username: "ruth", Role: sec.RoleEditor}

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	ctx = ctxutil.WithLogger(ctx, logger)
	ctx = ctxutil.WithClaims(ctx, claims)

	assert.Equal(t, "req-42", ctxutil.RequestID(ctx))
	assert.Same(t, logger, ctxutil.Logger(ctx))
	assert.Same(t, claims, ctxutil.Claims(ctx))
	assert.Equal(t, "editor-7", ctxutil.Actor(ctx))
	assert.Equal(t, slog.String("actor_id", "editor-7"), ctxutil.ActorAttr(ctx))
}
