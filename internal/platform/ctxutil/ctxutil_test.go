// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/ctxutil"
	"github.com/gudangku/gudangku/internal/platform/sec"
)

/*
TestRequestID verifies injection and retrieval of the request ID.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. After injection the same value comes back
	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger verifies that a missing logger falls back to the default and an
injected logger is returned as-is.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()

	// 1. No logger injected yet: the global default is returned
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. An injected logger round-trips
	custom := slog.Default().With(slog.String("component", "test"))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestAuthUser verifies injection and retrieval of authenticated claims.
*/
func TestAuthUser(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context carries no claims
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Injected claims round-trip
	claims := &sec.AuthClaims{UserID: 42, Username: "alice"}
	ctx = ctxutil.WithAuthUser(ctx, claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "alice", got.Username)
}
