package persist

import (
	"context"
	"errors"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/log"
)

// ErrProjectNotFound is returned when no snapshot exists for a project.
var ErrProjectNotFound = errors.New("project snapshot not found")

// SnapshotStore defines the interface for snapshot persistence.
type SnapshotStore interface {
	// Save stores the snapshot for a project, replacing any previous one.
	Save(ctx context.Context, projectID string, snap *graph.Snapshot) error

	// Load retrieves the snapshot for a project.
	Load(ctx context.Context, projectID string) (*graph.Snapshot, error)

	// Delete removes a project's snapshot.
	Delete(ctx context.Context, projectID string) error
}

// LoadOrEmpty loads a project snapshot, falling back to an empty graph when
// the snapshot is missing or unloadable. Surfacing a corrupt snapshot to
// the user is a page-level concern, not the engine's; here it is only
// logged.
func LoadOrEmpty(ctx context.Context, store SnapshotStore, projectID string, logger log.Logger) *graph.Snapshot {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	snap, err := store.Load(ctx, projectID)
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			logger.Warn("load project %s: %v, starting from empty graph", projectID, err)
		}
		return &graph.Snapshot{}
	}
	return snap
}
