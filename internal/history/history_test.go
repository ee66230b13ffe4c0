package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

func testSummary() *batch.Summary {
	return &batch.Summary{
		Rows: []batch.Row{
			{
				ID: "a", Title: "A", Organization: "Org", Total: 300, Rating: scoring.Good,
				Dimensions: map[scoring.Dimension]int{
					scoring.Findability:      80,
					scoring.Accessibility:    50,
					scoring.Interoperability: 100,
					scoring.Reusability:      50,
					scoring.Context:          20,
				},
			},
			{
				ID: "b", Title: "B", Total: 50, Rating: scoring.Poor,
				Dimensions: map[scoring.Dimension]int{},
			},
		},
		Skipped: 1,
		Errored: 0,
		RatingCounts: map[scoring.Rating]int{
			scoring.Good: 1,
			scoring.Poor: 1,
		},
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	id1, err := store.RecordRun(ctx, "dump.json", testSummary())
	require.NoError(t, err)
	id2, err := store.RecordRun(ctx, "catalog", testSummary())
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "catalog", runs[0].Source)
	assert.Equal(t, 2, runs[0].Scored)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, 1, runs[0].Ratings[scoring.Good])
	assert.Equal(t, 1, runs[0].Ratings[scoring.Poor])
	assert.InDelta(t, 175.0, runs[0].MeanScore, 0.001)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.RecordRun(context.Background(), "x", testSummary())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not clobber existing rows.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Runs(context.Background())
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
