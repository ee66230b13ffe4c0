// Package batch drives the scoring pipeline over a sequence of dataset
// records: filter out records missing their key fields, score the rest,
// survive per-record failures, and keep the output in input order.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/mqa/internal/metadata"
	"github.com/dotcommander/mqa/internal/scoring"
)

// Row is one dataset's flat summary, shaped for tabular export.
type Row struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Organization string        `json:"organization"`
	Total        int           `json:"total_score"`
	Rating       scoring.Rating `json:"rating"`

	// Dimensions holds the five realized dimension scores.
	Dimensions map[scoring.Dimension]int `json:"dimension_scores"`
}

// Summary is a full batch run's outcome.
type Summary struct {
	Rows         []Row
	Skipped      int
	Errored      int
	RatingCounts map[scoring.Rating]int

	// Sample is the detailed per-indicator result of the first scored
	// dataset, kept for the JSON audit report.
	Sample   *scoring.Result
	SampleID string
}

// MeanScore is the average total across scored rows, 0 for an empty run.
func (s *Summary) MeanScore() float64 {
	if len(s.Rows) == 0 {
		return 0
	}
	sum := 0
	for _, row := range s.Rows {
		sum += row.Total
	}
	return float64(sum) / float64(len(s.Rows))
}

// Scorer is the piece of the scoring engine the batch driver needs.
type Scorer interface {
	Score(ctx context.Context, d metadata.Dataset) *scoring.Result
}

// Runner applies a Scorer to whole batches.
type Runner struct {
	scorer      Scorer
	concurrency int
	logger      *slog.Logger
}

// NewRunner builds a Runner. Concurrency below 1 is treated as 1,
// strictly sequential scoring. A nil logger falls back to slog's
// default.
func NewRunner(scorer Scorer, concurrency int, logger *slog.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{scorer: scorer, concurrency: concurrency, logger: logger}
}

type outcome struct {
	row    Row
	result *scoring.Result
	err    error
}

// Run scores every eligible record. Records lacking a non-empty id or
// title are skipped silently; a record that fails during scoring is
// counted and logged but never aborts the batch. Row order equals input
// order minus skipped and errored records, regardless of concurrency.
func (r *Runner) Run(ctx context.Context, datasets []metadata.Dataset) *Summary {
	summary := &Summary{
		RatingCounts: make(map[scoring.Rating]int),
	}

	// Eligibility pass keeps indices stable for ordered output.
	var jobs []metadata.Dataset
	for _, d := range datasets {
		if d.ID() == "" || d.Title() == "" {
			summary.Skipped++
			continue
		}
		jobs = append(jobs, d)
	}

	outcomes := make([]outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, d := range jobs {
		g.Go(func() error {
			outcomes[i] = r.scoreOne(gctx, d)
			return nil
		})
	}
	// Workers never return errors; per-record failures live in their
	// outcome slot.
	_ = g.Wait()

	for _, out := range outcomes {
		if out.err != nil {
			summary.Errored++
			r.logger.Warn("scoring failed",
				"id", out.row.ID,
				"title", out.row.Title,
				"error", out.err)
			continue
		}
		summary.Rows = append(summary.Rows, out.row)
		summary.RatingCounts[out.row.Rating]++
		if summary.Sample == nil {
			summary.Sample = out.result
			summary.SampleID = out.row.ID
		}
	}

	return summary
}

// scoreOne evaluates a single record, converting any panic from a
// malformed structure into a per-record error.
func (r *Runner) scoreOne(ctx context.Context, d metadata.Dataset) (out outcome) {
	out.row.ID = d.ID()
	out.row.Title = d.Title()

	defer func() {
		if rec := recover(); rec != nil {
			out.err = fmt.Errorf("scoring panicked: %v", rec)
		}
	}()

	result := r.scorer.Score(ctx, d)

	out.result = result
	out.row.Organization = d.Organization()
	out.row.Total = result.Total
	out.row.Rating = result.Rating
	out.row.Dimensions = result.DimensionScores
	return out
}
