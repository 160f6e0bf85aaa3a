package testutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevkov/punchclock/internal/repository"
)

// ErrStoreUnavailable is returned by FailingSnapshotRepo.Put.
var ErrStoreUnavailable = errors.New("snapshot store unavailable")

// FailingSnapshotRepo rejects every save, for exercising the policy that
// persistence failures are swallowed and the in-memory state stays
// authoritative.
type FailingSnapshotRepo struct{}

func (FailingSnapshotRepo) Get(ctx context.Context, namespace string) ([]byte, error) {
	return nil, fmt.Errorf("snapshot %q: %w", namespace, repository.ErrNotFound)
}

func (FailingSnapshotRepo) Put(ctx context.Context, namespace string, payload []byte) error {
	return ErrStoreUnavailable
}
