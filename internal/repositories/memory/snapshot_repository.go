// Package memory is a process-local snapshot store, used by default and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
)

// SnapshotRepository keeps values in a map. Values are copied on the way in
// and out so callers can never alias stored bytes.
type SnapshotRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewSnapshotRepository creates an empty in-memory store.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{values: make(map[string][]byte)}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// Get returns a copy of the value under key.
func (r *SnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value under key.
func (r *SnapshotRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = v
	return nil
}

// Delete removes key.
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// Close is a no-op.
func (r *SnapshotRepository) Close() error {
	return nil
}
