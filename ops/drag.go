package ops

import (
	"context"
	"fmt"

	"github.com/smallnest/flowcanvas/analytics"
	"github.com/smallnest/flowcanvas/graph"
)

// ConnectionAbort describes a connection drag that ended over empty canvas
// rather than a valid target handle.
type ConnectionAbort struct {
	// Origin is the node the drag started from.
	Origin string

	// OriginHandle optionally names the handle the drag started from.
	OriginHandle string

	// Cursor is the pointer-up position in screen coordinates.
	Cursor graph.Position

	// Viewport is the pan/zoom at the time of release.
	Viewport graph.Viewport
}

// BeginConnectionDrag marks the start of a new connection drag. Any
// placeholder pair left by a previously aborted drag is discarded first, so
// at most one pair ever exists.
func (s *Service) BeginConnectionDrag(ctx context.Context) {
	s.store.ClearPlaceholder()
}

// HandleConnectionAbort synthesizes a placeholder node at the cursor's
// logical position and a temporary edge from the drag origin to it: "the
// user wants a new node here, wired in". The pair lives until the user
// assigns the placeholder a real kind or abandons it.
func (s *Service) HandleConnectionAbort(ctx context.Context, abort ConnectionAbort) (graph.Node, graph.Edge, error) {
	if _, ok := s.store.Node(abort.Origin); !ok {
		return graph.Node{}, graph.Edge{}, fmt.Errorf("connection abort: origin %s: %w", abort.Origin, graph.ErrNodeNotFound)
	}

	node := graph.Node{
		ID:       graph.NewID(),
		Kind:     graph.KindPlaceholder,
		Position: graph.ScreenToLogical(abort.Cursor, abort.Viewport),
	}
	edge := graph.Edge{
		ID:           graph.NewID(),
		Source:       abort.Origin,
		Target:       node.ID,
		SourceHandle: abort.OriginHandle,
		Kind:         graph.EdgeTemporary,
	}
	if err := s.store.SetPlaceholder(node, edge); err != nil {
		return graph.Node{}, graph.Edge{}, err
	}

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "node",
		Kind:     graph.KindPlaceholder,
		Action:   "drag_create",
	})
	return node, edge, nil
}

// AssignPlaceholderKind finalizes the placeholder into a real node of the
// given kind. The temporary edge is promoted to persistent only when the
// origin kind may feed the chosen kind; an incompatible choice still creates
// the node but drops the edge. A cycle check is unnecessary here: the
// placeholder is brand new and has no outgoing edges, so promoting its
// single incoming edge cannot close a cycle.
func (s *Service) AssignPlaceholderKind(ctx context.Context, kind string) (graph.Node, error) {
	if !s.registry.Known(kind) || kind == graph.KindPlaceholder {
		return graph.Node{}, fmt.Errorf("assign placeholder: %q: %w", kind, graph.ErrUnknownKind)
	}

	placeholder, edge, ok := s.store.Placeholder()
	if !ok {
		return graph.Node{}, graph.ErrNoPlaceholder
	}

	keepEdge := false
	if origin, found := s.store.Node(edge.Source); found {
		keepEdge = s.registry.CanConnect(origin.Kind, kind)
	}

	node := placeholder.Clone()
	node.Kind = kind
	node.Data = s.registry.DefaultData(kind)
	node.Selected = true
	if err := s.store.PromotePlaceholder(node, keepEdge); err != nil {
		return graph.Node{}, err
	}

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "node",
		Kind:     kind,
		Action:   "add",
		Metadata: map[string]any{"origin": "connection_drag"},
	})
	return node, nil
}

// DiscardPlaceholder drops the placeholder pair, e.g. when the user clicks
// away from the kind picker.
func (s *Service) DiscardPlaceholder(ctx context.Context) {
	s.store.ClearPlaceholder()
}
