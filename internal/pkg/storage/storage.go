package storage

import (
	"context"
	"io"
)

// FileStorage persists uploaded files (worker badge photos). Only a
// local-disk implementation exists; the interface keeps an object-store
// backend possible without touching callers.
type FileStorage interface {
	// Upload writes the file and returns its public URL path.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
