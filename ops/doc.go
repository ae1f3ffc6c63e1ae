// Package ops implements the node operations a canvas gesture maps to:
// adding nodes, duplicating, pasting a copied set, connecting nodes through
// the validator, and the connection-drag lifecycle that turns a drag
// released over empty canvas into a placeholder node wired by a temporary
// edge.
//
// The Service sits between gesture handlers and the graph store. Edge
// commits go through the Connection Validator; node additions merge caller
// data over the kind's default data from the registry; every operation
// emits one fire-and-forget analytics event naming the kind and the
// triggering origin.
package ops
