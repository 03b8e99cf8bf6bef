// Package metadata is a small key-value store over the local SQLite database.
// The client keeps the bearer token here.
package metadata

import "context"

// Repository describes the key-value operations.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
