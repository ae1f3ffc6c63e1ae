package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/smallnest/flowcanvas/graph"
)

// Markdown renders a snapshot as a Markdown document: a per-kind inventory,
// the connection list, and the Mermaid diagram in a fenced block.
func Markdown(title string, snap *graph.Snapshot) string {
	var sb strings.Builder

	sb.WriteString("# " + title + "\n\n")
	sb.WriteString(fmt.Sprintf("%d nodes, %d connections.\n\n", len(snap.Nodes), len(snap.Edges)))

	byKind := make(map[string]int)
	for _, n := range snap.Nodes {
		byKind[n.Kind]++
	}
	kindNames := make([]string, 0, len(byKind))
	for kind := range byKind {
		kindNames = append(kindNames, kind)
	}
	sort.Strings(kindNames)

	sb.WriteString("## Nodes\n\n")
	for _, kind := range kindNames {
		sb.WriteString(fmt.Sprintf("- **%s**: %d\n", kind, byKind[kind]))
	}
	sb.WriteString("\n")

	if len(snap.Edges) > 0 {
		kinds := make(map[string]string, len(snap.Nodes))
		for _, n := range snap.Nodes {
			kinds[n.ID] = n.Kind
		}
		sb.WriteString("## Connections\n\n")
		for _, e := range snap.Edges {
			sb.WriteString(fmt.Sprintf("- %s → %s\n", kinds[e.Source], kinds[e.Target]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Diagram\n\n")
	sb.WriteString("```mermaid\n")
	sb.WriteString(Mermaid(snap))
	sb.WriteString("```\n")

	return sb.String()
}

// HTML renders the Markdown export as a standalone HTML fragment.
func HTML(title string, snap *graph.Snapshot) string {
	doc := Markdown(title, snap)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags,
	})
	return string(markdown.ToHTML([]byte(doc), p, renderer))
}
