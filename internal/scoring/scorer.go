// Package scoring implements the FAIR+Context metadata quality rubric:
// a fixed table of weighted indicators grouped into five dimensions,
// summed (or, for Interoperability, maxed across distributions) and
// clamped per dimension, with an ordinal rating derived from the total.
package scoring

import (
	"context"

	"github.com/dotcommander/mqa/internal/metadata"
	"github.com/dotcommander/mqa/internal/probe"
)

// Options tunes rubric evaluation.
type Options struct {
	// PerResource switches Interoperability's best-of-resource pass to
	// genuinely scope each predicate to the single resource under
	// consideration. The reference rubric does NOT do this: its
	// distribution predicates inspect the dataset's whole resource
	// list, so every resource yields the same score. That oddity is the
	// compatible default; this flag is the documented deviation.
	PerResource bool
}

// Scorer evaluates datasets against the rubric. Safe for concurrent use
// as long as the injected Checker is.
type Scorer struct {
	checker probe.Checker
	opts    Options
}

// New returns a Scorer probing URLs through checker. A nil checker
// fails every reachability indicator, which is what offline runs want.
func New(checker probe.Checker, opts Options) *Scorer {
	return &Scorer{checker: checker, opts: opts}
}

// prober is the narrow view indicator predicates get of the
// reachability checker, with the context already bound.
type prober interface {
	reachable(url string) bool
}

type ctxProber struct {
	ctx     context.Context
	checker probe.Checker
}

func (p ctxProber) reachable(url string) bool {
	if p.checker == nil {
		return false
	}
	return p.checker.Reachable(p.ctx, url)
}

// Score evaluates one dataset and returns its full result: dimension
// scores, total, rating, and the per-indicator audit trail. The dataset
// is read, never written.
func (s *Scorer) Score(ctx context.Context, d metadata.Dataset) *Result {
	env := &Env{probe: ctxProber{ctx: ctx, checker: s.checker}}

	result := &Result{
		DimensionScores: make(map[Dimension]int, len(Dimensions)),
		Details:         make(map[Dimension][]IndicatorResult, len(Dimensions)),
	}

	for _, dim := range Dimensions {
		indicators := rubric[dim]

		// The audit trail always reports the dataset-wide view, even
		// for the best-of-resource dimension.
		details := make([]IndicatorResult, 0, len(indicators))
		sum := 0
		for _, ind := range indicators {
			passed := ind.Check(env, d)
			points := 0
			if passed {
				points = ind.MaxPoints
				sum += points
			}
			details = append(details, IndicatorResult{
				Indicator: ind.Name,
				Field:     ind.Field,
				Dimension: dim,
				MaxPoints: ind.MaxPoints,
				Points:    points,
				Passed:    passed,
			})
		}

		score := sum
		if dim == Interoperability {
			score = s.bestResourceScore(env, d, indicators)
		}
		score = clamp(score, MaxPoints[dim])

		result.DimensionScores[dim] = score
		result.Details[dim] = details
		result.Total += score
	}

	result.Rating = RatingForScore(result.Total)
	return result
}

// bestResourceScore judges a dataset's Interoperability by its single
// best distribution: each resource gets a local score from the full
// indicator list, and the maximum wins. No resources means zero.
func (s *Scorer) bestResourceScore(env *Env, d metadata.Dataset, indicators []Indicator) int {
	// The raw list decides emptiness: a resource entry that is not even
	// a map still gets judged (and scores the dataset-wide baseline).
	raw, _ := d["resources"].([]any)
	if len(raw) == 0 {
		return 0
	}

	best := 0
	for _, item := range raw {
		local := &Env{probe: env.probe}
		if s.opts.PerResource {
			if res, ok := item.(map[string]any); ok {
				local.resource = metadata.Resource(res)
			}
		}
		sum := 0
		for _, ind := range indicators {
			if ind.Check(local, d) {
				sum += ind.MaxPoints
			}
		}
		if sum > best {
			best = sum
		}
	}
	return best
}
