package ops

import (
	"context"
	"fmt"

	"github.com/smallnest/flowcanvas/analytics"
	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/log"
)

// DuplicateOffset is the fixed logical delta a duplicated or pasted node is
// shifted by, so the copy never lands exactly on the original.
const DuplicateOffset = 200

// Service exposes the higher-level node operations gestures invoke.
type Service struct {
	store     *graph.Store
	registry  graph.KindRegistry
	validator *graph.Validator
	sink      analytics.Sink
	logger    log.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithAnalytics routes operation events to a sink.
func WithAnalytics(sink analytics.Sink) ServiceOption {
	return func(s *Service) { s.sink = sink }
}

// WithLogger sets the service's logger.
func WithLogger(l log.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a node operations service over the store and registry.
func NewService(store *graph.Store, registry graph.KindRegistry, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		registry:  registry,
		validator: graph.NewValidator(store, registry),
		sink:      analytics.NopSink{},
		logger:    log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validator returns the connection validator used by this service, for
// gesture code that probes validity while a drag hovers a target.
func (s *Service) Validator() *graph.Validator {
	return s.validator
}

// AddOptions customizes AddNode.
type AddOptions struct {
	// Data is merged over the kind's default data.
	Data map[string]any

	// Position in logical coordinates. Nil places the node at the origin.
	Position *graph.Position

	// Origin names the triggering gesture for analytics ("toolbar",
	// "paste", "connection_drag", ...).
	Origin string
}

// AddNode creates a node of the given kind, commits it, and emits one
// analytics event naming the kind and the triggering origin.
func (s *Service) AddNode(ctx context.Context, kind string, opts AddOptions) (graph.Node, error) {
	if !s.registry.Known(kind) || kind == graph.KindPlaceholder {
		return graph.Node{}, fmt.Errorf("add node: %q: %w", kind, graph.ErrUnknownKind)
	}

	data := s.registry.DefaultData(kind)
	for k, v := range opts.Data {
		data[k] = v
	}

	pos := graph.Position{}
	if opts.Position != nil {
		pos = *opts.Position
	}

	node := graph.Node{
		ID:       graph.NewID(),
		Kind:     kind,
		Position: pos,
		Data:     data,
	}
	s.store.AddNodes(node)

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "node",
		Kind:     kind,
		Action:   "add",
		Metadata: map[string]any{"origin": opts.Origin},
	})
	return node, nil
}

// DuplicateNode clones an existing node at a (+200,+200) offset, selects the
// clone and deselects the original. Unknown IDs are a no-op and return
// ErrNodeNotFound, which gesture handlers absorb.
func (s *Service) DuplicateNode(ctx context.Context, id string) (graph.Node, error) {
	original, ok := s.store.Node(id)
	if !ok {
		return graph.Node{}, fmt.Errorf("duplicate node %s: %w", id, graph.ErrNodeNotFound)
	}
	if original.Kind == graph.KindPlaceholder {
		// A placeholder is mid-gesture scaffolding; a copy of it would be
		// a second placeholder the store does not track.
		return graph.Node{}, fmt.Errorf("duplicate node %s: %q: %w", id, original.Kind, graph.ErrUnknownKind)
	}

	clone := original.Clone()
	clone.ID = graph.NewID()
	clone.Position = original.Position.Add(DuplicateOffset, DuplicateOffset)
	clone.Selected = true
	s.store.AddNodesReplacingSelection(clone)

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "node",
		Kind:     clone.Kind,
		Action:   "duplicate",
	})
	return clone, nil
}

// PasteNodes clones a previously-copied batch with the duplicate offset and
// commits it in a single store commit; the pasted set replaces the current
// selection.
func (s *Service) PasteNodes(ctx context.Context, nodes []graph.Node) []graph.Node {
	if len(nodes) == 0 {
		return nil
	}

	clones := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		clone := n.Clone()
		clone.ID = graph.NewID()
		clone.Position = n.Position.Add(DuplicateOffset, DuplicateOffset)
		clone.Selected = true
		clones = append(clones, clone)
	}
	s.store.AddNodesReplacingSelection(clones...)

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "node",
		Action:   "paste",
		Metadata: map[string]any{"count": len(clones)},
	})
	return clones
}

// Connect commits a validated persistent edge. Validation failures are
// returned for callers that care; gesture code simply doesn't draw the edge.
func (s *Service) Connect(ctx context.Context, c graph.Connection) (graph.Edge, error) {
	if err := s.validator.Check(c); err != nil {
		return graph.Edge{}, fmt.Errorf("connect %s -> %s: %w", c.Source, c.Target, err)
	}

	edge := graph.Edge{
		ID:           graph.NewID(),
		Source:       c.Source,
		Target:       c.Target,
		SourceHandle: c.SourceHandle,
		TargetHandle: c.TargetHandle,
		Kind:         graph.EdgePersistent,
	}
	if err := s.store.AddEdges(edge); err != nil {
		return graph.Edge{}, err
	}

	analytics.Emit(ctx, s.sink, analytics.Event{
		Category: "edge",
		Action:   "connect",
	})
	return edge, nil
}

// AddDerivedNode spawns a node of the given kind to the right of a source
// node, accounting for the source's measured width, and wires source → new
// through the validator.
func (s *Service) AddDerivedNode(ctx context.Context, sourceID, kind string) (graph.Node, error) {
	source, ok := s.store.Node(sourceID)
	if !ok {
		return graph.Node{}, fmt.Errorf("derive from %s: %w", sourceID, graph.ErrNodeNotFound)
	}
	if !s.registry.CanConnect(source.Kind, kind) {
		return graph.Node{}, fmt.Errorf("derive %s from %s: %w", kind, source.Kind, graph.ErrIncompatibleKinds)
	}

	pos := graph.DerivedNodePosition(source)
	node, err := s.AddNode(ctx, kind, AddOptions{Position: &pos, Origin: "derive"})
	if err != nil {
		return graph.Node{}, err
	}
	if _, err := s.Connect(ctx, graph.Connection{Source: sourceID, Target: node.ID}); err != nil {
		return graph.Node{}, err
	}
	return node, nil
}
