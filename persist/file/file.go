// Package file provides a SnapshotStore writing one JSON file per project
// on the local filesystem. Best for desktop builds and development setups
// where no database is available.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
)

// FileSnapshotStore implements persist.SnapshotStore on a directory of
// <projectID>.json files.
type FileSnapshotStore struct {
	dir string
}

var _ persist.SnapshotStore = (*FileSnapshotStore)(nil)

// NewFileSnapshotStore creates a file store rooted at dir, creating the
// directory if missing.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create snapshot directory: %w", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

// path sanitizes the project ID into a file name; separators are flattened
// so an ID can never escape the store directory.
func (s *FileSnapshotStore) path(projectID string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(projectID)
	return filepath.Join(s.dir, name+".json")
}

// Save stores the snapshot for a project. The file is written to a temp
// name and renamed so a crash mid-write never leaves a corrupt snapshot.
func (s *FileSnapshotStore) Save(ctx context.Context, projectID string, snap *graph.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := s.path(projectID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for a project.
func (s *FileSnapshotStore) Load(ctx context.Context, projectID string) (*graph.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, persist.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a project's snapshot.
func (s *FileSnapshotStore) Delete(ctx context.Context, projectID string) error {
	err := os.Remove(s.path(projectID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
