package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smallnest/flowcanvas/graph"
)

// MermaidOptions defines configuration for Mermaid diagram generation
type MermaidOptions struct {
	// Direction of the flowchart (e.g., "TD", "LR")
	Direction string
}

// Mermaid generates a Mermaid flowchart of the snapshot with default
// options.
func Mermaid(snap *graph.Snapshot) string {
	return MermaidWithOptions(snap, MermaidOptions{Direction: "TD"})
}

// MermaidWithOptions generates a Mermaid flowchart with custom options.
// Nodes are emitted in a stable order so the same snapshot always renders
// the same diagram.
func MermaidWithOptions(snap *graph.Snapshot, opts MermaidOptions) string {
	var sb strings.Builder

	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}
	sb.WriteString(fmt.Sprintf("flowchart %s\n", direction))

	nodes := make([]graph.Node, len(snap.Nodes))
	copy(nodes, snap.Nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	alias := make(map[string]string, len(nodes))
	for i, n := range nodes {
		alias[n.ID] = fmt.Sprintf("n%d", i)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", alias[n.ID], nodeLabel(n)))
	}

	edges := make([]graph.Edge, len(snap.Edges))
	copy(edges, snap.Edges)
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	for _, e := range edges {
		from, okFrom := alias[e.Source]
		to, okTo := alias[e.Target]
		if !okFrom || !okTo {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}

	return sb.String()
}

// nodeLabel renders a short human label for a node: its kind, plus a text
// preview when the node carries one.
func nodeLabel(n graph.Node) string {
	if text, ok := n.Data["text"].(string); ok && text != "" {
		preview := text
		if len(preview) > 24 {
			preview = preview[:24] + "…"
		}
		preview = strings.ReplaceAll(preview, "\"", "'")
		preview = strings.ReplaceAll(preview, "\n", " ")
		return fmt.Sprintf("%s: %s", n.Kind, preview)
	}
	return n.Kind
}
