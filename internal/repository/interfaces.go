package repository

import "context"

// BlobRepository persists opaque values under string keys.
// Get returns ErrNotFound when nothing is stored under key.
type BlobRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
