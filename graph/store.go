package graph

import (
	"fmt"
	"sync"
)

// Mutation names the kind of store commit a listener is being told about.
type Mutation string

const (
	MutationLoad         Mutation = "load"
	MutationAddNodes     Mutation = "add_nodes"
	MutationAddEdges     Mutation = "add_edges"
	MutationNodeChanges  Mutation = "node_changes"
	MutationEdgeChanges  Mutation = "edge_changes"
	MutationReplaceNode  Mutation = "replace_node"
	MutationPlaceholder  Mutation = "placeholder"
	MutationClearPending Mutation = "clear_placeholder"
)

// MutationListener is notified after every committed store mutation. The
// persistence coordinator registers as one; it is how "mutate, then remember
// to persist" is centralized instead of being scattered across gesture
// handlers.
type MutationListener interface {
	OnGraphMutation(op Mutation)
}

// MutationListenerFunc is a function adapter for MutationListener.
type MutationListenerFunc func(op Mutation)

// OnGraphMutation implements the MutationListener interface.
func (f MutationListenerFunc) OnGraphMutation(op Mutation) { f(op) }

// Store is the single source of truth for the nodes and edges of one canvas
// session. Mutations are applied immediately and are final once committed;
// there is no built-in undo.
type Store struct {
	mu    sync.RWMutex
	nodes []Node
	edges []Edge

	// At most one placeholder node / temporary edge pair exists at a time,
	// left behind by a connection drag released over empty canvas.
	placeholderID string
	tempEdgeID    string

	listenerMu sync.RWMutex
	listeners  []MutationListener
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a listener for committed mutations.
func (s *Store) Subscribe(l MutationListener) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, l)
}

// notify runs outside the store lock so listeners may read the store.
func (s *Store) notify(op Mutation) {
	s.listenerMu.RLock()
	listeners := make([]MutationListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.RUnlock()

	for _, l := range listeners {
		l.OnGraphMutation(op)
	}
}

// Load replaces the store contents with a persisted snapshot. Temporary
// edges and placeholder nodes never appear in snapshots, so loading always
// yields a drag-free graph.
func (s *Store) Load(snap *Snapshot) {
	s.mu.Lock()
	s.nodes = s.nodes[:0]
	s.edges = s.edges[:0]
	s.placeholderID = ""
	s.tempEdgeID = ""
	if snap != nil {
		for _, n := range snap.Nodes {
			s.nodes = append(s.nodes, n.Clone())
		}
		s.edges = append(s.edges, snap.Edges...)
	}
	s.mu.Unlock()

	s.notify(MutationLoad)
}

// Nodes returns a copy of the current node collection.
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n.Clone())
	}
	return out
}

// Edges returns a copy of the current edge collection, temporary edge
// included.
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Node returns the node with the given ID.
func (s *Store) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.nodes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return Node{}, false
}

// SelectedNodes returns copies of the nodes currently selected.
func (s *Store) SelectedNodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Node
	for _, n := range s.nodes {
		if n.Selected {
			out = append(out, n.Clone())
		}
	}
	return out
}

// AddNodes commits new nodes. Adding an ID that already exists is a no-op
// for that node, keeping the commit idempotent.
func (s *Store) AddNodes(nodes ...Node) {
	s.mu.Lock()
	added := false
	for _, n := range nodes {
		if s.hasNodeLocked(n.ID) {
			continue
		}
		s.nodes = append(s.nodes, n.Clone())
		added = true
	}
	s.mu.Unlock()

	if added {
		s.notify(MutationAddNodes)
	}
}

// AddEdges commits new persistent or temporary edges. Adding an ID that
// already exists is a no-op for that edge. Self-loops and edges referencing
// missing nodes are rejected; the whole batch is validated before anything
// is appended, so a rejected batch commits nothing and listeners only ever
// hear about commits that happened.
func (s *Store) AddEdges(edges ...Edge) error {
	s.mu.Lock()
	for _, e := range edges {
		if e.Source == e.Target {
			s.mu.Unlock()
			return fmt.Errorf("add edge %s: %w", e.ID, ErrSelfLoop)
		}
		if !s.hasNodeLocked(e.Source) || !s.hasNodeLocked(e.Target) {
			s.mu.Unlock()
			return fmt.Errorf("add edge %s: %w", e.ID, ErrDanglingEdge)
		}
	}
	added := false
	for _, e := range edges {
		if s.hasEdgeLocked(e.ID) {
			continue
		}
		s.edges = append(s.edges, e)
		added = true
	}
	s.mu.Unlock()

	if added {
		s.notify(MutationAddEdges)
	}
	return nil
}

// AddNodesReplacingSelection commits new nodes and makes them the current
// selection in a single commit: every existing node is deselected, then the
// new nodes are added as-is. Paste and duplicate use this so the pasted set
// replaces the selection atomically.
func (s *Store) AddNodesReplacingSelection(nodes ...Node) {
	s.mu.Lock()
	for i := range s.nodes {
		s.nodes[i].Selected = false
	}
	for _, n := range nodes {
		if s.hasNodeLocked(n.ID) {
			continue
		}
		s.nodes = append(s.nodes, n.Clone())
	}
	s.mu.Unlock()

	s.notify(MutationAddNodes)
}

// ApplyNodeChanges folds a list of incremental changes over the node
// collection. Removals cascade-remove every edge referencing the removed
// node in the same commit, so referential integrity holds between any two
// committed states.
func (s *Store) ApplyNodeChanges(changes []NodeChange) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	changed := false
	for _, c := range changes {
		for i := 0; i < len(s.nodes); i++ {
			if s.nodes[i].ID != c.ID {
				continue
			}
			next, keep := applyNodeChange(s.nodes[i], c)
			if keep {
				s.nodes[i] = next
			} else {
				s.removeNodeLocked(i)
			}
			changed = true
			break
		}
	}
	s.mu.Unlock()

	// A list that matched no node is a no-op; it never reaches listeners,
	// so it cannot schedule a save.
	if changed {
		s.notify(MutationNodeChanges)
	}
}

// ApplyEdgeChanges folds a list of incremental changes over the edge
// collection.
func (s *Store) ApplyEdgeChanges(changes []EdgeChange) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	changed := false
	for _, c := range changes {
		if c.Type != EdgeChangeRemove {
			continue
		}
		for i := 0; i < len(s.edges); i++ {
			if s.edges[i].ID == c.ID {
				if s.edges[i].Kind == EdgeTemporary {
					s.tempEdgeID = ""
				}
				s.edges = append(s.edges[:i], s.edges[i+1:]...)
				changed = true
				break
			}
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify(MutationEdgeChanges)
	}
}

// ReplaceNode swaps a node wholesale, keyed by ID. Used when a placeholder
// is finalized into a real node.
func (s *Store) ReplaceNode(n Node) error {
	s.mu.Lock()
	replaced := false
	for i := range s.nodes {
		if s.nodes[i].ID == n.ID {
			s.nodes[i] = n.Clone()
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if !replaced {
		return fmt.Errorf("replace node %s: %w", n.ID, ErrNodeNotFound)
	}
	s.notify(MutationReplaceNode)
	return nil
}

// SetPlaceholder installs the placeholder node / temporary edge pair for an
// aborted connection drag. Any leftover pair from a previous drag is
// discarded first, so at most one pair exists at a time.
func (s *Store) SetPlaceholder(node Node, edge Edge) error {
	if edge.Kind != EdgeTemporary {
		return fmt.Errorf("placeholder edge %s must be temporary", edge.ID)
	}
	if edge.Source == edge.Target {
		return fmt.Errorf("placeholder edge %s: %w", edge.ID, ErrSelfLoop)
	}

	s.mu.Lock()
	s.clearPlaceholderLocked()
	if !s.hasNodeLocked(edge.Source) {
		s.mu.Unlock()
		return fmt.Errorf("placeholder edge %s: %w", edge.ID, ErrDanglingEdge)
	}
	s.nodes = append(s.nodes, node.Clone())
	s.edges = append(s.edges, edge)
	s.placeholderID = node.ID
	s.tempEdgeID = edge.ID
	s.mu.Unlock()

	s.notify(MutationPlaceholder)
	return nil
}

// Placeholder returns the current placeholder node and temporary edge.
func (s *Store) Placeholder() (Node, Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.placeholderID == "" {
		return Node{}, Edge{}, false
	}
	var node Node
	var edge Edge
	for _, n := range s.nodes {
		if n.ID == s.placeholderID {
			node = n.Clone()
		}
	}
	for _, e := range s.edges {
		if e.ID == s.tempEdgeID {
			edge = e
		}
	}
	return node, edge, true
}

// ClearPlaceholder discards the placeholder pair if present.
func (s *Store) ClearPlaceholder() {
	s.mu.Lock()
	cleared := s.clearPlaceholderLocked()
	s.mu.Unlock()

	if cleared {
		s.notify(MutationClearPending)
	}
}

// PromotePlaceholder turns the placeholder into a committed node of the
// given prepared form. With keepEdge the temporary edge becomes persistent;
// without it the edge is dropped and only the node survives.
func (s *Store) PromotePlaceholder(node Node, keepEdge bool) error {
	s.mu.Lock()
	if s.placeholderID == "" || node.ID != s.placeholderID {
		s.mu.Unlock()
		return ErrNoPlaceholder
	}
	for i := range s.nodes {
		if s.nodes[i].ID == s.placeholderID {
			s.nodes[i] = node.Clone()
			break
		}
	}
	for i := range s.edges {
		if s.edges[i].ID == s.tempEdgeID {
			if keepEdge {
				s.edges[i].Kind = EdgePersistent
			} else {
				s.edges = append(s.edges[:i], s.edges[i+1:]...)
			}
			break
		}
	}
	s.placeholderID = ""
	s.tempEdgeID = ""
	s.mu.Unlock()

	s.notify(MutationReplaceNode)
	return nil
}

// Snapshot returns a deep, serializable copy of the committed graph.
// Temporary edges and the placeholder node are mid-gesture transients and
// are excluded.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{}
	for _, n := range s.nodes {
		if n.ID == s.placeholderID {
			continue
		}
		snap.Nodes = append(snap.Nodes, n.Clone())
	}
	for _, e := range s.edges {
		if e.Kind != EdgePersistent {
			continue
		}
		snap.Edges = append(snap.Edges, e)
	}
	return snap
}

// outgoingPersistent builds an adjacency list of persistent edges, used by
// the validator's cycle check. Built fresh per call.
func (s *Store) outgoingPersistent() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.nodes))
	for _, e := range s.edges {
		if e.Kind != EdgePersistent {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
	}
	return out
}

func (s *Store) hasNodeLocked(id string) bool {
	for _, n := range s.nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasEdgeLocked(id string) bool {
	for _, e := range s.edges {
		if e.ID == id {
			return true
		}
	}
	return false
}

// removeNodeLocked deletes the node at index i and every edge referencing it.
func (s *Store) removeNodeLocked(i int) {
	id := s.nodes[i].ID
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)

	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Source == id || e.Target == id {
			if e.ID == s.tempEdgeID {
				s.tempEdgeID = ""
			}
			continue
		}
		kept = append(kept, e)
	}
	s.edges = kept

	if id == s.placeholderID {
		s.placeholderID = ""
	}
}

func (s *Store) clearPlaceholderLocked() bool {
	if s.placeholderID == "" && s.tempEdgeID == "" {
		return false
	}
	for i := 0; i < len(s.nodes); i++ {
		if s.nodes[i].ID == s.placeholderID {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	for i := 0; i < len(s.edges); i++ {
		if s.edges[i].ID == s.tempEdgeID {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			break
		}
	}
	s.placeholderID = ""
	s.tempEdgeID = ""
	return true
}
