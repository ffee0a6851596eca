package repositories

import (
	"context"
)

// SnapshotReader defines read operations on the key-value snapshot store
type SnapshotReader interface {
	// Get returns the raw value stored under key, or apperrors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

// SnapshotWriter defines write operations on the key-value snapshot store
type SnapshotWriter interface {
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// SnapshotRepositoryFacade combines all snapshot store interfaces
// This is a facade for clients that need access to all operations
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter

	// Close releases the underlying connection, if any.
	Close() error
}
