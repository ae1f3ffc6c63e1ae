package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallnest/flowcanvas/export"
)

func exportCmd() *cobra.Command {
	var format string
	var title string

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Export a canvas project as mermaid, markdown or html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if title == "" {
				title = args[0]
			}

			switch format {
			case "mermaid":
				fmt.Print(export.Mermaid(snap))
			case "markdown":
				fmt.Print(export.Markdown(title, snap))
			case "html":
				fmt.Print(export.HTML(title, snap))
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "mermaid", "Output format: mermaid, markdown or html")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title (defaults to the project ID)")
	return cmd
}
