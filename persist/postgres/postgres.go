// Package postgres provides a SnapshotStore backed by PostgreSQL, storing
// snapshots as JSONB. The production backend for multi-user deployments.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
)

// DBPool defines the interface for database connection pool
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresSnapshotStore implements persist.SnapshotStore using PostgreSQL
type PostgresSnapshotStore struct {
	pool      DBPool
	tableName string
}

var _ persist.SnapshotStore = (*PostgresSnapshotStore)(nil)

// PostgresOptions configuration for Postgres connection
type PostgresOptions struct {
	ConnString string
	TableName  string // Default "snapshots"
}

// NewPostgresSnapshotStore creates a new Postgres snapshot store
func NewPostgresSnapshotStore(ctx context.Context, opts PostgresOptions) (*PostgresSnapshotStore, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "snapshots"
	}

	return &PostgresSnapshotStore{
		pool:      pool,
		tableName: tableName,
	}, nil
}

// NewPostgresSnapshotStoreWithPool creates a new Postgres snapshot store with an existing pool
// Useful for testing with mocks
func NewPostgresSnapshotStoreWithPool(pool DBPool, tableName string) *PostgresSnapshotStore {
	if tableName == "" {
		tableName = "snapshots"
	}
	return &PostgresSnapshotStore{
		pool:      pool,
		tableName: tableName,
	}
}

// InitSchema creates the necessary table if it doesn't exist
func (s *PostgresSnapshotStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			project_id TEXT PRIMARY KEY,
			snapshot JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`, s.tableName)

	_, err := s.pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresSnapshotStore) Close() {
	s.pool.Close()
}

// Save stores the snapshot for a project, replacing any previous one.
func (s *PostgresSnapshotStore) Save(ctx context.Context, projectID string, snap *graph.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, snapshot, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			updated_at = EXCLUDED.updated_at
	`, s.tableName)

	_, err = s.pool.Exec(ctx, query, projectID, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for a project.
func (s *PostgresSnapshotStore) Load(ctx context.Context, projectID string) (*graph.Snapshot, error) {
	query := fmt.Sprintf(`
		SELECT snapshot FROM %s WHERE project_id = $1
	`, s.tableName)

	var data []byte
	err := s.pool.QueryRow(ctx, query, projectID).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", projectID, persist.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a project's snapshot.
func (s *PostgresSnapshotStore) Delete(ctx context.Context, projectID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE project_id = $1", s.tableName)
	_, err := s.pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
