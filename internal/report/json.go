package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

// jsonReport is the machine-readable run summary.
type jsonReport struct {
	Tool      string `json:"tool"`
	Timestamp string `json:"timestamp"`

	Scored  int     `json:"scored"`
	Skipped int     `json:"skipped"`
	Errored int     `json:"errored"`
	Mean    float64 `json:"mean_score"`

	RatingCounts map[scoring.Rating]int `json:"rating_counts"`
	Rows         []batch.Row            `json:"results"`

	// Sample carries the full per-indicator breakdown for one dataset,
	// the audit-trail view of the rubric.
	SampleID string          `json:"sample_id,omitempty"`
	Sample   *scoring.Result `json:"sample_detail,omitempty"`
}

func renderJSON(w io.Writer, summary *batch.Summary) error {
	report := jsonReport{
		Tool:         "mqa",
		Timestamp:    time.Now().Format(time.RFC3339),
		Scored:       len(summary.Rows),
		Skipped:      summary.Skipped,
		Errored:      summary.Errored,
		Mean:         summary.MeanScore(),
		RatingCounts: summary.RatingCounts,
		Rows:         summary.Rows,
		SampleID:     summary.SampleID,
		Sample:       summary.Sample,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
