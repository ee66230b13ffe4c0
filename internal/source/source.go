// Package source abstracts where dataset records come from. The batch
// pipeline only sees the Source interface; remote catalog paging and
// local file decoding stay behind it.
package source

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/mqa/internal/metadata"
)

// Source yields the dataset records to score. Failures are fatal to the
// run; a Source never returns a partial batch alongside an error.
type Source interface {
	Datasets(ctx context.Context) ([]metadata.Dataset, error)
}

// FromFile picks a decoder by extension. JSON dumps and CSV exports are
// supported; anything else is an error.
func FromFile(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonFile(path), nil
	case ".csv":
		return csvFile(path), nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", path)
	}
}

type jsonFile string

// Datasets reads a JSON array of records. Embedded serialized fields
// are decoded record by record.
func (p jsonFile) Datasets(_ context.Context) ([]metadata.Dataset, error) {
	raw, err := os.ReadFile(string(p))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", string(p), err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", string(p), err)
	}

	datasets := make([]metadata.Dataset, 0, len(records))
	for _, record := range records {
		datasets = append(datasets, metadata.DecodeEmbedded(metadata.Dataset(record)))
	}
	return datasets, nil
}

type csvFile string

// Datasets reads a CSV export with a header row. Every cell arrives as
// a string; list/map-typed columns (resources, tags, ...) are restored
// through the tolerant embedded decode.
func (p csvFile) Datasets(_ context.Context) ([]metadata.Dataset, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", string(p), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", string(p), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	datasets := make([]metadata.Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(metadata.Dataset, len(header))
		for i, field := range header {
			if i < len(row) {
				record[field] = row[i]
			}
		}
		datasets = append(datasets, metadata.DecodeEmbedded(record))
	}
	return datasets, nil
}

// Discover finds the lexically-latest dump file under dataDir. Dumps
// carry a timestamp in their name, so lexical order is chronological.
// Returns "" when the directory holds no dump.
func Discover(dataDir string) (string, error) {
	var matches []string
	for _, pattern := range []string{"**/*.json", "**/*.csv"} {
		found, err := doublestar.Glob(os.DirFS(dataDir), pattern)
		if err != nil {
			return "", fmt.Errorf("scanning %s: %w", dataDir, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return filepath.Join(dataDir, matches[len(matches)-1]), nil
}
