package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploads land. Upload returns either a
// relative path (local/community mode) or an absolute URL (object gateway /
// enterprise mode); callers must accept both shapes interchangeably.
type FileStorage interface {
	// Upload stores a file and returns its canonical reference.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file by its canonical reference.
	Delete(ctx context.Context, ref string) error

	// GetURL resolves a canonical reference to a fetchable URL.
	GetURL(ctx context.Context, ref string, expiry time.Duration) (string, error)

	// Exists checks if a file exists.
	Exists(ctx context.Context, ref string) (bool, error)

	// CanDelete reports whether the backend supports direct deletion.
	// When false, stale files are left for out-of-band cleanup.
	CanDelete() bool
}
