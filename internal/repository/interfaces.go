package repository

import "context"

// SnapshotRepo is the key-value blob store the tracker persists into:
// one serialized snapshot per logical namespace ("tracker", "settings").
type SnapshotRepo interface {
	// Get returns the payload last saved for the namespace, or an error
	// wrapping ErrNotFound if the namespace has never been saved.
	Get(ctx context.Context, namespace string) ([]byte, error)
	// Put overwrites the payload for the namespace.
	Put(ctx context.Context, namespace string, payload []byte) error
}
