package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mqa/internal/config"
	"github.com/dotcommander/mqa/internal/history"
	"github.com/dotcommander/mqa/internal/scoring"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded assessment runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path := historyPath(cfg)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("no history yet at %s, run an assessment first", path)
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs(cmd.Context())
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Run", "When", "Source", "Scored", "Mean", "Excellent", "Good", "Sufficient", "Poor"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.ID, run.CreatedAt, run.Source, run.Scored,
				fmt.Sprintf("%.1f", run.MeanScore),
				run.Ratings[scoring.Excellent],
				run.Ratings[scoring.Good],
				run.Ratings[scoring.Sufficient],
				run.Ratings[scoring.Poor],
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
