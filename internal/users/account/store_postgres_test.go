// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/pkg/pointer"
)

func TestBuildProfileUpdate_SingleField(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	query, args := buildProfileUpdate(7, ProfileChanges{
		Username: pointer.To("newname"),
	}, now)

	assert.Equal(t, "UPDATE users SET username = $1, updated_at = $2 WHERE id = $3", query)
	require.Len(t, args, 3)
	assert.Equal(t, "newname", args[0])
	assert.Equal(t, now, args[1])
	assert.Equal(t, int64(7), args[2])
}

func TestBuildProfileUpdate_AllFields(t *testing.T) {
	now := time.Now()

	query, args := buildProfileUpdate(1, ProfileChanges{
		Username:     pointer.To("u"),
		Email:        pointer.To("e@example.com"),
		PasswordHash: pointer.To("$2a$10$hash"),
		FirstName:    pointer.To("First"),
		LastName:     pointer.To("Last"),
		PhotoURL:     pointer.To("http://localhost:8080/uploads/p.jpg"),
	}, now)

	assert.Equal(t,
		"UPDATE users SET username = $1, email = $2, password_hash = $3, first_name = $4, last_name = $5, photo_url = $6, updated_at = $7 WHERE id = $8",
		query)
	require.Len(t, args, 8)
	assert.Equal(t, int64(1), args[7])
}

func TestBuildProfileUpdate_SkipsAbsentFields(t *testing.T) {
	query, args := buildProfileUpdate(3, ProfileChanges{
		Email:    pointer.To("new@example.com"),
		LastName: pointer.To("Smith"),
	}, time.Now())

	assert.Equal(t, "UPDATE users SET email = $1, last_name = $2, updated_at = $3 WHERE id = $4", query)
	assert.NotContains(t, query, "username")
	assert.NotContains(t, query, "password_hash")
	assert.NotContains(t, query, "photo_url")
	require.Len(t, args, 4)
}

func TestBuildProfileUpdate_PresentEmptyStringIsWritten(t *testing.T) {
	// Presence, not truthiness: a submitted empty string clears the column.
	query, args := buildProfileUpdate(3, ProfileChanges{
		FirstName: pointer.To(""),
	}, time.Now())

	assert.Equal(t, "UPDATE users SET first_name = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, "", args[0])
}
