// Package export renders a canvas snapshot in shareable formats: a Mermaid
// flowchart of the node topology, a Markdown summary, and an HTML document
// rendered from that Markdown. Only committed state is exported; snapshots
// never contain temporary edges or placeholder nodes.
package export
