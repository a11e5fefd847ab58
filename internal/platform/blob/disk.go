// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gudangku/gudangku/internal/platform/constants"
)

// DiskStore implements [Store] on the local filesystem.
//
// Files are written under a configured directory and served by the API's
// static file handler at /uploads/. Stored names are prefixed with a
// millisecond timestamp so repeated uploads of the same filename never
// overwrite each other.
type DiskStore struct {
	dir           string
	publicBaseURL string
}

// NewDiskStore creates the upload directory if needed and returns a store.
//
// # Parameters
//   - dir: Filesystem directory for uploaded files.
//   - publicBaseURL: URL prefix for generated file URLs (no trailing slash).
func NewDiskStore(dir string, publicBaseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: failed to create upload directory: %w", err)
	}

	return &DiskStore{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Save writes content to disk and returns its public URL.
func (s *DiskStore) Save(ctx context.Context, originalName string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Strip any path components the client may have smuggled in.
	safeName := sanitizeName(filepath.Base(originalName))

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safeName)
	fullPath := filepath.Join(s.dir, storedName)

	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", fmt.Errorf("blob: failed to write file: %w", err)
	}

	return s.publicBaseURL + constants.UploadURLPrefix + storedName, nil
}

// sanitizeName replaces characters that are unsafe in filenames or URLs.
func sanitizeName(name string) string {
	var builder strings.Builder
	for _, char := range name {
		switch {
		case char >= 'a' && char <= 'z',
			char >= 'A' && char <= 'Z',
			char >= '0' && char <= '9',
			char == '.', char == '-', char == '_':
			builder.WriteRune(char)
		default:
			builder.WriteRune('_')
		}
	}

	if builder.Len() == 0 {
		return "upload"
	}
	return builder.String()
}
