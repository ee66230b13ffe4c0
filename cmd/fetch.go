package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/mqa/internal/catalog"
	"github.com/dotcommander/mqa/internal/config"
	"github.com/dotcommander/mqa/internal/metadata"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the catalog metadata to a local dump",
	Long: `Fetch pages the catalog's package list until exhausted and writes all
records to a timestamped JSON dump in the data directory. Later assess
runs pick up the newest dump automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		client := catalog.New(cfg.CatalogURL, cfg.PageLimit)
		client.Progress = func(fetched int) {
			logger.Info("fetching catalog", "datasets", fetched)
		}

		datasets, err := client.Datasets(cmd.Context())
		if err != nil {
			return err
		}

		path, err := saveDump(cfg.DataDir, datasets)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d datasets to %s\n", len(datasets), path)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

// saveDump writes records as a JSON array named after the fetch date.
func saveDump(dataDir string, datasets []metadata.Dataset) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(dataDir, fmt.Sprintf("metadata_%s.json", time.Now().Format("20060102_150405")))

	data, err := json.MarshalIndent(datasets, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
