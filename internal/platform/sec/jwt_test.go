// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/sec"
)

const testSecret = "test-signing-secret"

func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "gudangku.app")
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that an issued token verifies back to the
same principal.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.IssueToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "gudangku.app", claims.Issuer)

	// TTL is pinned to one hour.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, sec.AccessTokenTTL.Seconds(), remaining.Seconds(), 5)
}

/*
TestTokenService_ExpiredToken verifies that a token past its expiry is rejected.
*/
func TestTokenService_ExpiredToken(t *testing.T) {
	service := newTestTokenService(t)

	// Hand-craft an already-expired token with the same secret.
	past := time.Now().Add(-2 * time.Hour)
	claims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
		UserID:   42,
		Username: "alice",
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.VerifyToken(expiredToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_WrongSecret verifies that a token signed with another secret
is rejected as invalid.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	service := newTestTokenService(t)

	other, err := sec.NewTokenService("another-secret", "gudangku.app")
	require.NoError(t, err)

	foreignToken, err := other.IssueToken(42, "alice")
	require.NoError(t, err)

	_, err = service.VerifyToken(foreignToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_MalformedToken verifies that garbage input is rejected with
the malformed sentinel.
*/
func TestTokenService_MalformedToken(t *testing.T) {
	service := newTestTokenService(t)

	_, err := service.VerifyToken("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
}

/*
TestTokenService_TamperedToken verifies that modifying the payload breaks the
signature check.
*/
func TestTokenService_TamperedToken(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.IssueToken(42, "alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = service.VerifyToken(tampered)
	require.Error(t, err)
}

/*
TestNewTokenService_EmptySecret verifies that construction fails without a secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "gudangku.app")
	require.Error(t, err)
}
