package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mqa/internal/config"
	"github.com/dotcommander/mqa/internal/metadata"
	"github.com/dotcommander/mqa/internal/schema"
	"github.com/dotcommander/mqa/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <record.json>",
	Short: "Score a single dataset record and show every indicator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading record: %w", err)
		}
		var record map[string]any
		if err := json.Unmarshal(raw, &record); err != nil {
			return fmt.Errorf("parsing record: %w", err)
		}
		dataset := metadata.DecodeEmbedded(metadata.Dataset(record))

		out := cmd.OutOrStdout()
		for _, warning := range schema.NewValidator().ValidateDataset(dataset) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", warning.Record, warning.Message)
		}

		scorer := scoring.New(newChecker(cfg), scoring.Options{PerResource: cfg.PerResource})
		result := scorer.Score(cmd.Context(), dataset)

		fmt.Fprintf(out, "%s (%s)\n", dataset.Title(), dataset.ID())
		fmt.Fprintf(out, "Total: %d / %d (%s)\n\n", result.Total, scoring.TotalMax, result.Rating)

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Dimension", "Indicator", "Points", "Max", "Passed"})
		for _, dim := range scoring.Dimensions {
			for _, ind := range result.Details[dim] {
				t.AppendRow(table.Row{string(dim), ind.Indicator, ind.Points, ind.MaxPoints, ind.Passed})
			}
			t.AppendSeparator()
		}
		footer := table.Row{"Total", "", result.Total, scoring.TotalMax, ""}
		t.AppendFooter(footer)
		fmt.Fprintln(out, t.Render())
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
