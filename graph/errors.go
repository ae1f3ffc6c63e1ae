package graph

import "errors"

var (
	// ErrNodeNotFound is returned when a node ID does not resolve to an
	// existing node.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is returned when an edge ID does not resolve to an
	// existing edge.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrSelfLoop is returned when an edge's source and target are the
	// same node.
	ErrSelfLoop = errors.New("edge source and target are the same node")

	// ErrWouldCycle is returned when committing an edge would create a
	// cycle through the persistent edge set.
	ErrWouldCycle = errors.New("edge would create a cycle")

	// ErrIncompatibleKinds is returned when the kind registry forbids the
	// source kind from feeding the target kind.
	ErrIncompatibleKinds = errors.New("source kind may not feed target kind")

	// ErrUnknownKind is returned when a node kind is not registered.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrNoPlaceholder is returned when a placeholder operation runs with
	// no placeholder pair present.
	ErrNoPlaceholder = errors.New("no placeholder node present")

	// ErrDanglingEdge is returned when an edge references a node that does
	// not exist.
	ErrDanglingEdge = errors.New("edge references a missing node")
)
