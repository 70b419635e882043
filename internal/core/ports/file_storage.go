package ports

import (
	"context"
	"io"
)

// FileStorage keeps uploaded document blobs under opaque keys.
type FileStorage interface {
	// Save writes r under key and returns the number of bytes written.
	Save(ctx context.Context, key string, r io.Reader) (int64, error)

	// Open returns the blob stored under key. A missing key returns an
	// ObjectNotFound error.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
}
