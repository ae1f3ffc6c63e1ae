package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/smallnest/flowcanvas/graph"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(14)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project-id>",
		Short: "Summarize a persisted canvas project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSummary(args[0], snap)
			return nil
		},
	}
}

func printSummary(projectID string, snap *graph.Snapshot) {
	fmt.Println(titleStyle.Render("canvas " + projectID))
	fmt.Printf("%s %d\n", labelStyle.Render("Nodes"), len(snap.Nodes))
	fmt.Printf("%s %d\n", labelStyle.Render("Edges"), len(snap.Edges))

	byKind := make(map[string]int)
	for _, n := range snap.Nodes {
		byKind[n.Kind]++
	}
	kindNames := make([]string, 0, len(byKind))
	for kind := range byKind {
		kindNames = append(kindNames, kind)
	}
	sort.Strings(kindNames)
	for _, kind := range kindNames {
		fmt.Printf("%s %d\n", labelStyle.Render("  "+kindStyle.Render(kind)), byKind[kind])
	}

	if len(snap.Edges) > 0 {
		kinds := make(map[string]string, len(snap.Nodes))
		for _, n := range snap.Nodes {
			kinds[n.ID] = n.Kind
		}
		fmt.Println(labelStyle.Render("Connections"))
		for _, e := range snap.Edges {
			fmt.Printf("  %s %s %s\n",
				kindStyle.Render(kinds[e.Source]),
				subtleStyle.Render("→"),
				kindStyle.Render(kinds[e.Target]))
		}
	}
}
