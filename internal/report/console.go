package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	ratingStyles = map[scoring.Rating]lipgloss.Style{
		scoring.Excellent:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		scoring.Good:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // cyan
		scoring.Sufficient: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		scoring.Poor:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
	}
)

func dimensionOrder() []scoring.Dimension {
	return scoring.Dimensions
}

func renderConsole(w io.Writer, summary *batch.Summary, opts Options) error {
	if opts.Quiet {
		return nil
	}

	fmt.Fprintln(w, headerStyle.Render("Metadata Quality Assessment"))
	fmt.Fprintf(w, "Datasets scored: %d", len(summary.Rows))
	if summary.Skipped > 0 {
		fmt.Fprintf(w, "  %s", dimStyle.Render(fmt.Sprintf("(skipped %d without id/title)", summary.Skipped)))
	}
	if summary.Errored > 0 {
		fmt.Fprintf(w, "  %s", ratingStyles[scoring.Poor].Render(fmt.Sprintf("(%d failed)", summary.Errored)))
	}
	fmt.Fprintf(w, "\nAverage score: %.2f / %d\n\n", summary.MeanScore(), scoring.TotalMax)

	fmt.Fprintln(w, ratingTable(summary))

	if opts.Verbose && len(summary.Rows) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Lowest-scoring datasets"))
		fmt.Fprintln(w, extremesTable(summary.Rows, 10))
	}

	return nil
}

// ratingTable renders the datasets-per-rating distribution.
func ratingTable(summary *batch.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rating", "Datasets"})

	for _, rating := range []scoring.Rating{scoring.Excellent, scoring.Good, scoring.Sufficient, scoring.Poor} {
		style, ok := ratingStyles[rating]
		label := string(rating)
		if ok {
			label = style.Render(label)
		}
		t.AppendRow(table.Row{label, summary.RatingCounts[rating]})
	}
	t.AppendFooter(table.Row{"Total", len(summary.Rows)})
	return t.Render()
}

// extremesTable lists the n worst datasets, lowest first.
func extremesTable(rows []batch.Row, n int) string {
	sorted := make([]batch.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total < sorted[j].Total })
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Score", "Rating"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 48},
	})
	for _, row := range sorted {
		t.AppendRow(table.Row{row.ID, row.Title, row.Total, string(row.Rating)})
	}
	return t.Render()
}
