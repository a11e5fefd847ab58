// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/sec"
)

/*
TestHashPassword verifies that hashing never stores the plain text and that
two hashes of the same password differ (bcrypt salts per call).
*/
func TestHashPassword(t *testing.T) {
	first, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", first)

	second, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

/*
TestVerifyPassword covers the three outcomes: match, mismatch, and a
malformed stored hash which must surface as an error rather than a
silent "no match".
*/
func TestVerifyPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)

	t.Run("Match", func(t *testing.T) {
		ok, err := sec.VerifyPassword("s3cret-pass", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Mismatch", func(t *testing.T) {
		ok, err := sec.VerifyPassword("wrong-pass", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MalformedHash", func(t *testing.T) {
		ok, err := sec.VerifyPassword("s3cret-pass", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.False(t, ok)
	})
}
