// Package storage stages selected video files so the playback surface can
// stream them while an analysis attempt is in flight. One staged object per
// selection; the session releases it when a new selection supersedes it.
package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for staged-file operations.
type ObjectStorage interface {
	// Upload stages an object under key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Open returns a reader over a staged object.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// GetURL returns the playable URL for a staged object.
	GetURL(key string) string

	// Delete releases a staged object.
	Delete(ctx context.Context, key string) error

	// Exists checks if a staged object is present.
	Exists(ctx context.Context, key string) (bool, error)
}
