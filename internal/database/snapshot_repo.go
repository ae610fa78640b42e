package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/priya/ideacraft/internal/store"
)

// snapshotKey identifies the single app_state row holding the serialized
// project collection
const snapshotKey = "ideacraft"

// SnapshotRepository persists the store's snapshot blob. It is the concrete
// storage collaborator behind the store's Persister interface.
type SnapshotRepository struct {
	db *DB
}

func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save upserts the snapshot blob
func (r *SnapshotRepository) Save(ctx context.Context, snap store.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO app_state (id, snapshot, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET snapshot = $2, updated_at = $3
	`

	if _, err := r.db.Pool.Exec(ctx, query, snapshotKey, blob, time.Now()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. A missing row is not an error: it means
// a fresh installation, and an empty snapshot is returned.
func (r *SnapshotRepository) Load(ctx context.Context) (store.Snapshot, error) {
	var blob []byte
	query := `SELECT snapshot FROM app_state WHERE id = $1`

	err := r.db.Pool.QueryRow(ctx, query, snapshotKey).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Snapshot{}, nil
	}
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, nil
}
