package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
)

func TestRedisSnapshotStore(t *testing.T) {
	// Start miniredis
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	store := NewRedisSnapshotStore(RedisOptions{
		Addr: mr.Addr(),
	})
	defer store.Close()

	ctx := context.Background()

	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "n1", Kind: "text", Position: graph.Position{X: 1, Y: 2}, Data: map[string]any{"text": "hello"}},
		},
		Edges: []graph.Edge{
			{ID: "e1", Source: "n1", Target: "n2", Kind: graph.EdgePersistent},
		},
	}

	// Test Save
	err = store.Save(ctx, "p1", snap)
	assert.NoError(t, err)
	assert.True(t, mr.Exists("flowcanvas:project:p1:snapshot"))

	// Test Load
	loaded, err := store.Load(ctx, "p1")
	assert.NoError(t, err)
	assert.Len(t, loaded.Nodes, 1)
	assert.Equal(t, "n1", loaded.Nodes[0].ID)
	assert.Equal(t, "hello", loaded.Nodes[0].Data["text"])
	assert.Len(t, loaded.Edges, 1)

	// Missing project
	_, err = store.Load(ctx, "ghost")
	assert.ErrorIs(t, err, persist.ErrProjectNotFound)

	// Test Delete
	err = store.Delete(ctx, "p1")
	assert.NoError(t, err)

	_, err = store.Load(ctx, "p1")
	assert.ErrorIs(t, err, persist.ErrProjectNotFound)
}

func TestRedisSnapshotStore_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	store := NewRedisSnapshotStore(RedisOptions{
		Addr: mr.Addr(),
		TTL:  time.Minute,
	})
	defer store.Close()

	ctx := context.Background()
	err = store.Save(ctx, "p1", &graph.Snapshot{})
	assert.NoError(t, err)

	// Snapshot expires once the TTL elapses.
	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "p1")
	assert.ErrorIs(t, err, persist.ErrProjectNotFound)
}

func TestRedisSnapshotStore_CustomPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	store := NewRedisSnapshotStore(RedisOptions{
		Addr:   mr.Addr(),
		Prefix: "canvas-test:",
	})
	defer store.Close()

	err = store.Save(context.Background(), "p1", &graph.Snapshot{})
	assert.NoError(t, err)
	assert.True(t, mr.Exists("canvas-test:project:p1:snapshot"))
}
