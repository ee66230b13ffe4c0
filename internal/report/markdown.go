package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

func renderMarkdown(w io.Writer, summary *batch.Summary) error {
	fmt.Fprintln(w, "# Metadata Quality Assessment")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scored %d datasets (skipped %d, failed %d), average %.2f / %d.\n\n",
		len(summary.Rows), summary.Skipped, summary.Errored, summary.MeanScore(), scoring.TotalMax)

	dist := table.NewWriter()
	dist.AppendHeader(table.Row{"Rating", "Datasets"})
	for _, rating := range []scoring.Rating{scoring.Excellent, scoring.Good, scoring.Sufficient, scoring.Poor} {
		dist.AppendRow(table.Row{string(rating), summary.RatingCounts[rating]})
	}
	fmt.Fprintln(w, "## Rating distribution")
	fmt.Fprintln(w)
	fmt.Fprintln(w, dist.RenderMarkdown())
	fmt.Fprintln(w)

	scores := table.NewWriter()
	hdr := table.Row{}
	for _, col := range header() {
		hdr = append(hdr, col)
	}
	scores.AppendHeader(hdr)
	for _, row := range summary.Rows {
		values := table.Row{}
		for _, v := range rowValues(row) {
			values = append(values, v)
		}
		scores.AppendRow(values)
	}
	fmt.Fprintln(w, "## Scores")
	fmt.Fprintln(w)
	fmt.Fprintln(w, scores.RenderMarkdown())

	return nil
}
