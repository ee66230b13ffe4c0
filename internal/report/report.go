// Package report renders and persists batch results: styled console
// summaries, machine-readable JSON, Markdown, and the CSV exports plus
// the per-indicator audit detail the assessment leaves on disk.
package report

import (
	"fmt"
	"io"

	"github.com/dotcommander/mqa/internal/batch"
)

// Options tunes rendering.
type Options struct {
	Quiet   bool
	Verbose bool
}

// Render writes the summary to w in the requested format. The "csv"
// format is file-based only and handled by SaveCSV; asking for it here
// is an error.
func Render(w io.Writer, summary *batch.Summary, format string, opts Options) error {
	switch format {
	case "console":
		return renderConsole(w, summary, opts)
	case "json":
		return renderJSON(w, summary)
	case "markdown":
		return renderMarkdown(w, summary)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// header returns the flat CSV/Markdown column names: identifying
// fields, total and rating, then one column per dimension score.
func header() []string {
	cols := []string{"id", "title", "organization", "total_score", "rating"}
	for _, dim := range dimensionOrder() {
		cols = append(cols, fmt.Sprintf("%s_score", dim))
	}
	return cols
}

func rowValues(row batch.Row) []string {
	values := []string{
		row.ID,
		row.Title,
		row.Organization,
		fmt.Sprintf("%d", row.Total),
		string(row.Rating),
	}
	for _, dim := range dimensionOrder() {
		values = append(values, fmt.Sprintf("%d", row.Dimensions[dim]))
	}
	return values
}
