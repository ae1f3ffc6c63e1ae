package graph

// Snapshot is the serializable form of a committed graph: the node
// collection plus the persistent edge set. It is what the persistence layer
// saves and what a session is restored from.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Empty reports whether the snapshot holds no nodes and no edges.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Nodes) == 0 && len(s.Edges) == 0)
}
