package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

// SaveCSV persists the scores table twice, once under a timestamped
// name and once under the stable name the next tooling step expects,
// plus the datasets-per-rating summary. Returns the written paths.
func SaveCSV(dir string, summary *batch.Summary) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results dir: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	stamped := filepath.Join(dir, fmt.Sprintf("mqa_scores_%s.csv", stamp))
	stable := filepath.Join(dir, "mqa_scores.csv")

	for _, path := range []string{stamped, stable} {
		if err := writeScores(path, summary); err != nil {
			return nil, err
		}
	}

	ratings := filepath.Join(dir, "ratings_summary.csv")
	if err := writeRatings(ratings, summary); err != nil {
		return nil, err
	}

	return []string{stamped, stable, ratings}, nil
}

func writeScores(path string, summary *batch.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header()); err != nil {
		return err
	}
	for _, row := range summary.Rows {
		if err := w.Write(rowValues(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeRatings(path string, summary *batch.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"rating", "count"}); err != nil {
		return err
	}
	for _, rating := range []scoring.Rating{scoring.Excellent, scoring.Good, scoring.Sufficient, scoring.Poor} {
		if err := w.Write([]string{string(rating), strconv.Itoa(summary.RatingCounts[rating])}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveSampleDetail dumps the first scored dataset's per-indicator
// breakdown as JSON. Returns "" without error when the batch produced
// no rows.
func SaveSampleDetail(dir string, summary *batch.Summary) (string, error) {
	if summary.Sample == nil {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}

	path := filepath.Join(dir, "detailed_sample.json")
	payload := struct {
		ID     string          `json:"id"`
		Result *scoring.Result `json:"result"`
	}{ID: summary.SampleID, Result: summary.Sample}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
