package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemorySnapshotRepo is an in-memory implementation of SnapshotRepo, useful
// for tests. Safe for concurrent use.
type MemorySnapshotRepo struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemorySnapshotRepo creates an empty in-memory snapshot store.
func NewMemorySnapshotRepo() *MemorySnapshotRepo {
	return &MemorySnapshotRepo{blobs: make(map[string][]byte)}
}

func (r *MemorySnapshotRepo) Get(ctx context.Context, namespace string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payload, ok := r.blobs[namespace]
	if !ok {
		return nil, fmt.Errorf("snapshot %q: %w", namespace, ErrNotFound)
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (r *MemorySnapshotRepo) Put(ctx context.Context, namespace string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	r.blobs[namespace] = stored
	return nil
}

// Compile-time check that both implementations satisfy SnapshotRepo.
var (
	_ SnapshotRepo = (*MemorySnapshotRepo)(nil)
	_ SnapshotRepo = (*SQLiteSnapshotRepo)(nil)
)
