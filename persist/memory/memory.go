// Package memory provides an in-process SnapshotStore, used by tests and
// ephemeral sessions.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
)

// MemorySnapshotStore implements persist.SnapshotStore with a map. Snapshots
// are stored as serialized JSON so Save/Load round-trips behave exactly like
// a remote store.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte

	// SaveErr, when set, makes every Save return this error. Lets tests
	// exercise save-failure paths.
	SaveErr error

	saves int
}

var _ persist.SnapshotStore = (*MemorySnapshotStore)(nil)

// NewMemorySnapshotStore creates an empty in-memory snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: make(map[string][]byte)}
}

// Save stores the snapshot for a project.
func (s *MemorySnapshotStore) Save(ctx context.Context, projectID string, snap *graph.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	s.snapshots[projectID] = data
	s.saves++
	return nil
}

// Load retrieves the snapshot for a project.
func (s *MemorySnapshotStore) Load(ctx context.Context, projectID string) (*graph.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.snapshots[projectID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, persist.ErrProjectNotFound)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a project's snapshot.
func (s *MemorySnapshotStore) Delete(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, projectID)
	return nil
}

// SaveCount returns how many saves have been issued. Test helper.
func (s *MemorySnapshotStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
