// Package history keeps assessment runs in a local SQLite database so
// successive runs over the same catalog can be compared.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/scoring"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at  TEXT NOT NULL,
	source      TEXT NOT NULL,
	scored      INTEGER NOT NULL,
	skipped     INTEGER NOT NULL,
	errored     INTEGER NOT NULL,
	mean_score  REAL NOT NULL,
	excellent   INTEGER NOT NULL,
	good        INTEGER NOT NULL,
	sufficient  INTEGER NOT NULL,
	poor        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS scores (
	run_id       INTEGER NOT NULL REFERENCES runs(id),
	dataset_id   TEXT NOT NULL,
	title        TEXT NOT NULL,
	organization TEXT NOT NULL,
	total        INTEGER NOT NULL,
	rating       TEXT NOT NULL,
	findability      INTEGER NOT NULL,
	accessibility    INTEGER NOT NULL,
	interoperability INTEGER NOT NULL,
	reusability      INTEGER NOT NULL,
	context          INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scores_run ON scores(run_id);
`

// Store wraps the SQLite history database.
type Store struct {
	db *sql.DB
}

// Open opens (and, on first use, creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun persists one batch summary and its per-dataset rows,
// returning the run id.
func (s *Store) RecordRun(ctx context.Context, source string, summary *batch.Summary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (created_at, source, scored, skipped, errored, mean_score,
			excellent, good, sufficient, poor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		source,
		len(summary.Rows),
		summary.Skipped,
		summary.Errored,
		summary.MeanScore(),
		summary.RatingCounts[scoring.Excellent],
		summary.RatingCounts[scoring.Good],
		summary.RatingCounts[scoring.Sufficient],
		summary.RatingCounts[scoring.Poor],
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scores (run_id, dataset_id, title, organization, total, rating,
			findability, accessibility, interoperability, reusability, context)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, row := range summary.Rows {
		_, err := stmt.ExecContext(ctx,
			runID, row.ID, row.Title, row.Organization, row.Total, string(row.Rating),
			row.Dimensions[scoring.Findability],
			row.Dimensions[scoring.Accessibility],
			row.Dimensions[scoring.Interoperability],
			row.Dimensions[scoring.Reusability],
			row.Dimensions[scoring.Context],
		)
		if err != nil {
			return 0, fmt.Errorf("inserting score for %s: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// Run is one recorded assessment run.
type Run struct {
	ID        int64
	CreatedAt string
	Source    string
	Scored    int
	Skipped   int
	Errored   int
	MeanScore float64
	Ratings   map[scoring.Rating]int
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, source, scored, skipped, errored, mean_score,
			excellent, good, sufficient, poor
		FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var excellent, good, sufficient, poor int
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Source, &r.Scored, &r.Skipped,
			&r.Errored, &r.MeanScore, &excellent, &good, &sufficient, &poor); err != nil {
			return nil, err
		}
		r.Ratings = map[scoring.Rating]int{
			scoring.Excellent:  excellent,
			scoring.Good:       good,
			scoring.Sufficient: sufficient,
			scoring.Poor:       poor,
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
