package graph

// Validator decides whether a proposed connection may be created. It is
// consulted every time a drag hovers a potential target, so every check runs
// against the current committed graph with temporary edges excluded.
type Validator struct {
	store    *Store
	registry KindRegistry
}

// NewValidator creates a validator over the given store and kind registry.
func NewValidator(store *Store, registry KindRegistry) *Validator {
	return &Validator{store: store, registry: registry}
}

// IsValidConnection reports whether the candidate edge may be created.
// Checks run in order and short-circuit on the first failure: self-loop,
// kind compatibility, then cycle prevention.
func (v *Validator) IsValidConnection(c Connection) bool {
	return v.Check(c) == nil
}

// Check is IsValidConnection with the rejection reason. Gesture code uses
// IsValidConnection and stays silent; Check exists for callers that commit
// edges directly.
func (v *Validator) Check(c Connection) error {
	if c.Target == "" || c.Target == c.Source {
		return ErrSelfLoop
	}

	source, ok := v.store.Node(c.Source)
	if !ok {
		return ErrNodeNotFound
	}
	target, ok := v.store.Node(c.Target)
	if !ok {
		return ErrNodeNotFound
	}

	if !v.registry.CanConnect(source.Kind, target.Kind) {
		return ErrIncompatibleKinds
	}

	if v.wouldCycle(c.Source, c.Target) {
		return ErrWouldCycle
	}
	return nil
}

// wouldCycle walks persistent edges from target; reaching source means the
// candidate would close a cycle source → … → target → … → source. The
// traversal is rebuilt from scratch on every call because the graph mutates
// between validation calls during an active drag.
func (v *Validator) wouldCycle(source, target string) bool {
	adjacency := v.store.outgoingPersistent()

	visited := make(map[string]bool)
	stack := []string{target}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == source {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		stack = append(stack, adjacency[current]...)
	}
	return false
}
