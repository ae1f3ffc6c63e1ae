package graph

// NodeChangeType enumerates the incremental node mutations a gesture can
// produce.
type NodeChangeType string

const (
	// NodeChangePosition moves a node.
	NodeChangePosition NodeChangeType = "position"

	// NodeChangeSelect updates a node's selection flag.
	NodeChangeSelect NodeChangeType = "select"

	// NodeChangeDimensions records a node's measured width.
	NodeChangeDimensions NodeChangeType = "dimensions"

	// NodeChangeRemove deletes a node and cascades to its edges.
	NodeChangeRemove NodeChangeType = "remove"
)

// NodeChange is one incremental mutation of the node collection. Changes are
// folded over the current collection in order; changes naming an unknown node
// are ignored.
type NodeChange struct {
	Type NodeChangeType

	// ID of the node the change applies to.
	ID string

	// Position for NodeChangePosition.
	Position Position

	// Selected for NodeChangeSelect.
	Selected bool

	// Width for NodeChangeDimensions.
	Width float64
}

// EdgeChangeType enumerates the incremental edge mutations.
type EdgeChangeType string

const (
	// EdgeChangeSelect updates nothing the engine interprets today but is
	// accepted so callers can route selection through one path.
	EdgeChangeSelect EdgeChangeType = "select"

	// EdgeChangeRemove deletes an edge.
	EdgeChangeRemove EdgeChangeType = "remove"
)

// EdgeChange is one incremental mutation of the edge collection.
type EdgeChange struct {
	Type EdgeChangeType

	// ID of the edge the change applies to.
	ID string
}

// applyNodeChange folds a single change over a node, returning the updated
// node and whether it survives (false for removals).
func applyNodeChange(n Node, c NodeChange) (Node, bool) {
	switch c.Type {
	case NodeChangePosition:
		n.Position = c.Position
	case NodeChangeSelect:
		n.Selected = c.Selected
	case NodeChangeDimensions:
		n.Width = c.Width
	case NodeChangeRemove:
		return n, false
	}
	return n, true
}
