package database

import (
	"context"
	"fmt"
	"log"
)

// CreateTables creates the application state table. The whole project
// collection is persisted as one JSONB snapshot row; generation phase and
// spotlight state are deliberately never stored.
func (db *DB) CreateTables(ctx context.Context) error {
	log.Println("Creating database tables...")

	appStateTable := `
	CREATE TABLE IF NOT EXISTS app_state (
		id VARCHAR(50) PRIMARY KEY,
		snapshot JSONB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Pool.Exec(ctx, appStateTable); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}

	log.Println("✅ All tables created successfully")
	return nil
}
