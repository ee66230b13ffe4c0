package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/mqa/internal/batch"
	"github.com/dotcommander/mqa/internal/catalog"
	"github.com/dotcommander/mqa/internal/config"
	"github.com/dotcommander/mqa/internal/history"
	"github.com/dotcommander/mqa/internal/metadata"
	"github.com/dotcommander/mqa/internal/probe"
	"github.com/dotcommander/mqa/internal/report"
	"github.com/dotcommander/mqa/internal/schema"
	"github.com/dotcommander/mqa/internal/scoring"
	"github.com/dotcommander/mqa/internal/source"
)

var (
	inputFile  string
	fetchFirst bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a catalog and write the quality reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
	SilenceUsage: true,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, assessCmd} {
		cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Local metadata dump (JSON or CSV)")
		cmd.Flags().BoolVar(&fetchFirst, "fetch", false, "Fetch fresh metadata from the catalog API")
		cmd.MarkFlagsMutuallyExclusive("input", "fetch")
	}
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := newLogger(cfg)

	datasets, origin, err := loadDatasets(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("metadata loaded", "datasets", len(datasets), "source", origin)

	if cfg.Sample > 0 && cfg.Sample < len(datasets) {
		datasets = datasets[:cfg.Sample]
		logger.Info("sampling", "datasets", len(datasets))
	}

	if cfg.Verbose {
		warnRecordShapes(datasets, logger)
	}

	checker := newChecker(cfg)
	scorer := scoring.New(checker, scoring.Options{PerResource: cfg.PerResource})
	runner := batch.NewRunner(scorer, cfg.Concurrency, logger)

	start := time.Now()
	summary := runner.Run(ctx, datasets)
	logger.Info("scoring finished",
		"scored", len(summary.Rows),
		"skipped", summary.Skipped,
		"errored", summary.Errored,
		"elapsed", time.Since(start).Round(time.Millisecond))

	paths, err := report.SaveCSV(cfg.ResultsDir, summary)
	if err != nil {
		return fmt.Errorf("writing score files: %w", err)
	}
	if detail, err := report.SaveSampleDetail(cfg.ResultsDir, summary); err != nil {
		return fmt.Errorf("writing sample detail: %w", err)
	} else if detail != "" {
		paths = append(paths, detail)
	}
	logger.Info("results written", "files", paths)

	if err := recordHistory(ctx, cfg, origin, summary); err != nil {
		return fmt.Errorf("recording run history: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if cfg.Format == "csv" {
		// Already on disk; nothing left to render.
		return nil
	}
	return report.Render(out, summary, cfg.Format, report.Options{
		Quiet:   cfg.Quiet,
		Verbose: cfg.Verbose,
	})
}

// loadDatasets resolves the metadata source: an explicit file, a fresh
// catalog fetch, or the latest dump in the data dir, falling back to a
// catalog fetch when the data dir is empty.
func loadDatasets(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]metadata.Dataset, string, error) {
	switch {
	case fetchFirst:
		return fetchCatalog(ctx, cfg, logger)
	case inputFile != "":
		datasets, err := loadFile(ctx, inputFile)
		return datasets, inputFile, err
	}

	latest, err := source.Discover(cfg.DataDir)
	if err == nil && latest != "" {
		logger.Info("no input given, using most recent dump", "file", latest)
		datasets, err := loadFile(ctx, latest)
		return datasets, latest, err
	}
	logger.Info("no local dump found, fetching from catalog")
	return fetchCatalog(ctx, cfg, logger)
}

func loadFile(ctx context.Context, path string) ([]metadata.Dataset, error) {
	src, err := source.FromFile(path)
	if err != nil {
		return nil, err
	}
	return src.Datasets(ctx)
}

func fetchCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]metadata.Dataset, string, error) {
	client := catalog.New(cfg.CatalogURL, cfg.PageLimit)
	client.Progress = func(fetched int) {
		logger.Info("fetching catalog", "datasets", fetched)
	}
	datasets, err := client.Datasets(ctx)
	if err != nil {
		return nil, "", err
	}

	path, err := saveDump(cfg.DataDir, datasets)
	if err != nil {
		return nil, "", fmt.Errorf("saving raw metadata: %w", err)
	}
	logger.Info("raw metadata saved", "file", path)
	return datasets, "catalog", nil
}

func newChecker(cfg *config.Config) probe.Checker {
	if cfg.Offline {
		return probe.Static(false)
	}
	return probe.NewCached(probe.NewHTTPChecker(cfg.ProbeTimeout()))
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Quiet {
		level = slog.LevelError
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func warnRecordShapes(datasets []metadata.Dataset, logger *slog.Logger) {
	validator := schema.NewValidator()
	for _, d := range datasets {
		for _, warning := range validator.ValidateDataset(d) {
			logger.Warn("record shape", "record", warning.Record, "issue", warning.Message)
		}
	}
}

func recordHistory(ctx context.Context, cfg *config.Config, origin string, summary *batch.Summary) error {
	store, err := history.Open(historyPath(cfg))
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.RecordRun(ctx, origin, summary)
	return err
}

func historyPath(cfg *config.Config) string {
	if cfg.HistoryDB != "" {
		return cfg.HistoryDB
	}
	return filepath.Join(cfg.ResultsDir, "history.db")
}
