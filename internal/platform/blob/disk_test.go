// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestDiskStore_Save verifies that content lands on disk and the returned URL
points under the public /uploads/ prefix.
*/
func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "photo.png", []byte("fake-png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"), "url: %s", url)
	assert.True(t, strings.HasSuffix(url, "-photo.png"), "url: %s", url)

	// The stored file must exist and hold the exact content.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), content)
}

/*
TestDiskStore_Save_StripsClientPath verifies that path components in the
client-supplied filename never escape the upload directory.
*/
func TestDiskStore_Save_StripsClientPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "../../etc/passwd", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-passwd"))
}

/*
TestDiskStore_Save_CancelledContext verifies that an already-cancelled context
aborts before touching the filesystem.
*/
func TestDiskStore_Save_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "photo.png", []byte("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

/*
TestSanitizeName verifies character filtering for stored filenames.
*/
func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "CleanName", input: "photo-1.png", expected: "photo-1.png"},
		{name: "SpacesAndUnicode", input: "foto gudang é.png", expected: "foto_gudang__.png"},
		{name: "Empty", input: "", expected: "upload"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sanitizeName(tc.input))
		})
	}
}
