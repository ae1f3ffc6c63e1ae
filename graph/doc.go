// Package graph implements the in-memory model of a canvas graph: the node
// and edge collections, incremental change sets, connection validation with
// cycle prevention, and the coordinate mapping between screen and logical
// space.
//
// The Store is the single source of truth for a session. Gestures mutate it
// through change sets or the higher-level ops package; every committed
// mutation notifies registered MutationListeners, which is how the
// persistence coordinator learns that a save is due.
//
// # Core Concepts
//
// ## Nodes and Edges
//
// A Node is a processing step on the canvas, identified by a Kind tag whose
// behavior is resolved through a KindRegistry. An Edge is a directed
// connection from a producer node to a consumer node. Persistent edges are
// part of the saved document; temporary edges exist only while a connection
// drag is in progress and are never persisted.
//
// ## Validation
//
// The Validator gates every proposed connection: no self-loops, the source
// kind must be allowed to feed the target kind, and the persistent edge set
// must stay acyclic. The cycle check is a fresh depth-first traversal on
// every call because the graph mutates between calls during a drag.
package graph
