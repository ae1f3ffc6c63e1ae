package graph

import (
	"github.com/google/uuid"
)

// EdgeKind distinguishes saved edges from drag-transient ones.
type EdgeKind string

const (
	// EdgePersistent edges are part of the document and participate in
	// cycle detection.
	EdgePersistent EdgeKind = "persistent"

	// EdgeTemporary edges exist only during an in-progress connection drag
	// and are never persisted.
	EdgeTemporary EdgeKind = "temporary"
)

// KindPlaceholder is the kind assigned to a node synthesized when a
// connection drag ends over empty canvas. It is replaced by a real kind when
// the user picks one, or discarded.
const KindPlaceholder = "placeholder"

// Position is a point in logical (pan/zoom-independent) graph coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the position translated by dx, dy.
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Node is a single processing step on the canvas.
type Node struct {
	// ID uniquely identifies the node. Assigned at creation, never reused.
	ID string `json:"id"`

	// Kind tags what the node does (e.g. "text", "image", "transcribe").
	// Behavior is resolved through a KindRegistry; the engine itself does
	// not interpret it.
	Kind string `json:"kind"`

	// Position in logical graph coordinates.
	Position Position `json:"position"`

	// Width is the measured width of the rendered node, used when spawning
	// a derived node to its right. Zero when not yet measured.
	Width float64 `json:"width,omitempty"`

	// Data is the kind-specific payload. Opaque to the engine.
	Data map[string]any `json:"data,omitempty"`

	// Selected reports whether the node is part of the current selection.
	Selected bool `json:"selected,omitempty"`
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	c := n
	c.Data = cloneData(n.Data)
	return c
}

// Edge is a directed connection from a producer node to a consumer node.
type Edge struct {
	// ID uniquely identifies the edge.
	ID string `json:"id"`

	// Source is the producer node's ID.
	Source string `json:"source"`

	// Target is the consumer node's ID.
	Target string `json:"target"`

	// SourceHandle optionally names the output handle on the source node.
	SourceHandle string `json:"sourceHandle,omitempty"`

	// TargetHandle optionally names the input handle on the target node.
	TargetHandle string `json:"targetHandle,omitempty"`

	// Kind is persistent for saved edges, temporary for drag transients.
	Kind EdgeKind `json:"kind"`
}

// Connection is a proposed edge, as produced by a connection-drag gesture.
type Connection struct {
	Source       string
	Target       string
	SourceHandle string
	TargetHandle string
}

// Viewport describes the current pan and zoom of the canvas.
type Viewport struct {
	// X, Y is the screen-space translation of the logical origin.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Zoom is the scale factor. A zero value is treated as 1.
	Zoom float64 `json:"zoom"`
}

// KindRegistry supplies per-kind behavior to the engine. The engine holds no
// knowledge of what any specific kind does; it looks everything up here.
type KindRegistry interface {
	// Known reports whether kind is a registered node kind.
	Known(kind string) bool

	// DefaultData returns the initial Data payload for a new node of kind.
	// The returned map is owned by the caller.
	DefaultData(kind string) map[string]any

	// CanConnect reports whether a node of sourceKind may feed a node of
	// targetKind.
	CanConnect(sourceKind, targetKind string) bool
}

// NewID returns a fresh unique identifier for a node or edge.
func NewID() string {
	return uuid.NewString()
}

func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the JSON-shaped subset of values that node data is
// built from. Other values are copied by reference.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneData(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
