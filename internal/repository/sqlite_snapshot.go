package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(db *sql.DB) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context, namespace string) ([]byte, error) {
	query := `SELECT payload FROM snapshots WHERE namespace = ?`
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, namespace).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot %q: %w", namespace, ErrNotFound)
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", namespace, err)
	}
	return payload, nil
}

func (r *SQLiteSnapshotRepo) Put(ctx context.Context, namespace string, payload []byte) error {
	query := `INSERT INTO snapshots (namespace, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, namespace, payload, nowUTC())
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", namespace, err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
