package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mqa/internal/scoring"
)

var rubricMarkdown bool

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Print the indicator table",
	Long: `Rubric lists every indicator with its dimension, field tag and weight:
the complete static rule configuration the scores are computed from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Dimension", "Indicator", "Field", "Weight", "Ceiling"})

		rubric := scoring.Rubric()
		total := 0
		for _, dim := range scoring.Dimensions {
			for i, ind := range rubric[dim] {
				ceiling := ""
				if i == 0 {
					ceiling = fmt.Sprintf("%d", scoring.MaxPoints[dim])
				}
				t.AppendRow(table.Row{string(dim), ind.Name, ind.Field, ind.MaxPoints, ceiling})
			}
			t.AppendSeparator()
			total += scoring.MaxPoints[dim]
		}
		t.AppendFooter(table.Row{"", "", "", "", total})

		out := cmd.OutOrStdout()
		if rubricMarkdown {
			fmt.Fprintln(out, t.RenderMarkdown())
		} else {
			fmt.Fprintln(out, t.Render())
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rubricCmd.Flags().BoolVar(&rubricMarkdown, "markdown", false, "Render as a Markdown table")
	rootCmd.AddCommand(rubricCmd)
}
