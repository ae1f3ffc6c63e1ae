// Package sqlite provides a SnapshotStore backed by SQLite. Lightweight,
// serverless, one file per deployment; the default for single-machine
// installs.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
)

// SqliteSnapshotStore implements persist.SnapshotStore using SQLite.
type SqliteSnapshotStore struct {
	db        *sql.DB
	tableName string
}

var _ persist.SnapshotStore = (*SqliteSnapshotStore)(nil)

// SqliteOptions configuration for SQLite connection
type SqliteOptions struct {
	Path      string
	TableName string // Default "snapshots"
}

// NewSqliteSnapshotStore creates a new SQLite snapshot store
func NewSqliteSnapshotStore(opts SqliteOptions) (*SqliteSnapshotStore, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "snapshots"
	}

	store := &SqliteSnapshotStore{
		db:        db,
		tableName: tableName,
	}

	if err := store.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// InitSchema creates the necessary table if it doesn't exist
func (s *SqliteSnapshotStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			project_id TEXT PRIMARY KEY,
			snapshot TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`, s.tableName)

	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SqliteSnapshotStore) Close() error {
	return s.db.Close()
}

// Save stores the snapshot for a project, replacing any previous one.
func (s *SqliteSnapshotStore) Save(ctx context.Context, projectID string, snap *graph.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, snapshot, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query, projectID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for a project.
func (s *SqliteSnapshotStore) Load(ctx context.Context, projectID string) (*graph.Snapshot, error) {
	query := fmt.Sprintf(`
		SELECT snapshot FROM %s WHERE project_id = ?
	`, s.tableName)

	var data string
	err := s.db.QueryRowContext(ctx, query, projectID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", projectID, persist.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a project's snapshot.
func (s *SqliteSnapshotStore) Delete(ctx context.Context, projectID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE project_id = ?", s.tableName)
	_, err := s.db.ExecContext(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
