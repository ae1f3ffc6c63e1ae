package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/kinds"
)

func abortFrom(origin string) ConnectionAbort {
	return ConnectionAbort{
		Origin:   origin,
		Cursor:   graph.Position{X: 800, Y: 600},
		Viewport: graph.Viewport{X: 0, Y: 0, Zoom: 2},
	}
}

func TestHandleConnectionAbort(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, err := svc.AddNode(ctx, kinds.Image, AddOptions{})
	require.NoError(t, err)

	node, edge, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	assert.Equal(t, graph.KindPlaceholder, node.Kind)
	// Cursor mapped from screen to logical under zoom 2.
	assert.Equal(t, graph.Position{X: 400, Y: 300}, node.Position)
	assert.Equal(t, origin.ID, edge.Source)
	assert.Equal(t, node.ID, edge.Target)
	assert.Equal(t, graph.EdgeTemporary, edge.Kind)

	// Exactly one placeholder node and one temporary edge exist.
	assert.Len(t, store.Nodes(), 2)
	assert.Len(t, store.Edges(), 1)
}

func TestHandleConnectionAbort_UnknownOrigin(t *testing.T) {
	store, svc, _ := serviceFixture(t)

	_, _, err := svc.HandleConnectionAbort(context.Background(), abortFrom("ghost"))
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	assert.Empty(t, store.Nodes())
}

func TestNewDragClearsPreviousPlaceholder(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Image, AddOptions{})
	first, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	// Starting a new drag discards the leftover pair before anything else.
	svc.BeginConnectionDrag(ctx)
	_, ok := store.Node(first.ID)
	assert.False(t, ok)
	assert.Empty(t, store.Edges())

	second, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.Nodes(), 2)
	assert.Len(t, store.Edges(), 1)
}

func TestAssignPlaceholderKind_CompatiblePromotesEdge(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Audio, AddOptions{})
	placeholder, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	node, err := svc.AssignPlaceholderKind(ctx, kinds.Transcribe)
	require.NoError(t, err)

	assert.Equal(t, placeholder.ID, node.ID)
	assert.Equal(t, kinds.Transcribe, node.Kind)
	assert.True(t, node.Selected)
	assert.Equal(t, map[string]any{"text": ""}, node.Data)

	edges := store.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, graph.EdgePersistent, edges[0].Kind)

	snap := store.Snapshot()
	assert.Len(t, snap.Nodes, 2)
	assert.Len(t, snap.Edges, 1)
}

func TestAssignPlaceholderKind_IncompatibleDropsEdge(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Audio, AddOptions{})
	_, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	// Audio may not feed text: the node is still created, the edge is not.
	node, err := svc.AssignPlaceholderKind(ctx, kinds.Text)
	require.NoError(t, err)
	assert.Equal(t, kinds.Text, node.Kind)
	assert.Empty(t, store.Edges())
}

func TestAssignPlaceholderKind_NoPlaceholder(t *testing.T) {
	_, svc, _ := serviceFixture(t)

	_, err := svc.AssignPlaceholderKind(context.Background(), kinds.Text)
	assert.ErrorIs(t, err, graph.ErrNoPlaceholder)
}

func TestAssignPlaceholderKind_UnknownKind(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Image, AddOptions{})
	_, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	_, err = svc.AssignPlaceholderKind(ctx, "hologram")
	assert.ErrorIs(t, err, graph.ErrUnknownKind)

	// The pair is untouched; the user can still pick a valid kind.
	_, _, ok := store.Placeholder()
	assert.True(t, ok)
}

func TestDuplicatePlaceholderRejected(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Image, AddOptions{})
	placeholder, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	// A copy of the placeholder would be a second untracked placeholder.
	_, err = svc.DuplicateNode(ctx, placeholder.ID)
	assert.ErrorIs(t, err, graph.ErrUnknownKind)
	assert.Len(t, store.Nodes(), 2)
}

func TestDiscardPlaceholder(t *testing.T) {
	store, svc, _ := serviceFixture(t)
	ctx := context.Background()

	origin, _ := svc.AddNode(ctx, kinds.Image, AddOptions{})
	_, _, err := svc.HandleConnectionAbort(ctx, abortFrom(origin.ID))
	require.NoError(t, err)

	svc.DiscardPlaceholder(ctx)

	assert.Len(t, store.Nodes(), 1)
	assert.Empty(t, store.Edges())
}
