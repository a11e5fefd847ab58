// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/ctxutil"
	"github.com/gudangku/gudangku/internal/platform/middleware"
	"github.com/gudangku/gudangku/internal/platform/sec"
)

// stubVerifier returns fixed claims or a fixed error for any token.
type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	return s.claims, s.err
}

// captureHandler records whether it was reached and the claims it saw.
type captureHandler struct {
	called bool
	claims *sec.AuthClaims
}

func (c *captureHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	c.called = true
	c.claims = ctxutil.GetAuthUser(request.Context())
	writer.WriteHeader(http.StatusOK)
}

/*
TestAuthenticate_AnonymousPassesThrough verifies that a request with no
Authorization header proceeds without claims. RequireAuth is the gate for
protected routes, not Authenticate.
*/
func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	next := &captureHandler{}
	handler := middleware.Authenticate(&stubVerifier{})(next)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, next.called)
	assert.Nil(t, next.claims)
}

/*
TestAuthenticate_MalformedHeader verifies that a non-Bearer header is rejected
with 403 before the verifier runs.
*/
func TestAuthenticate_MalformedHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "NoScheme", header: "abc.def.ghi"},
		{name: "WrongScheme", header: "Basic abc.def.ghi"},
		{name: "TooManyParts", header: "Bearer one two"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := &captureHandler{}
			handler := middleware.Authenticate(&stubVerifier{})(next)

			request := httptest.NewRequest(http.MethodGet, "/items", nil)
			request.Header.Set("Authorization", tc.header)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.False(t, next.called)
		})
	}
}

/*
TestAuthenticate_InvalidToken verifies that a failing verifier yields 403 and
the downstream handler is never reached.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	next := &captureHandler{}
	verifier := &stubVerifier{err: errors.New("signature mismatch")}
	handler := middleware.Authenticate(verifier)(next)

	request := httptest.NewRequest(http.MethodGet, "/items", nil)
	request.Header.Set("Authorization", "Bearer some.bad.token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, next.called)
}

/*
TestAuthenticate_ValidToken verifies that verified claims land in the request
context for downstream handlers.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	next := &captureHandler{}
	verifier := &stubVerifier{claims: &sec.AuthClaims{UserID: 42, Username: "alice"}}
	handler := middleware.Authenticate(verifier)(next)

	request := httptest.NewRequest(http.MethodGet, "/items", nil)
	request.Header.Set("Authorization", "Bearer good.token.here")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, next.called)
	require.NotNil(t, next.claims)
	assert.Equal(t, int64(42), next.claims.UserID)
	assert.Equal(t, "alice", next.claims.Username)
}

/*
TestRequireAuth verifies the 401 gate for anonymous requests and pass-through
for authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	t.Run("AnonymousIsRejected", func(t *testing.T) {
		next := &captureHandler{}
		handler := middleware.RequireAuth(next)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)
	})

	t.Run("AuthenticatedProceeds", func(t *testing.T) {
		next := &captureHandler{}
		handler := middleware.RequireAuth(next)

		request := httptest.NewRequest(http.MethodGet, "/items", nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: 42, Username: "alice"})

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, next.called)
	})
}
