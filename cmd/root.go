package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "mqa",
	Short: "Metadata quality assessment for open data catalogs",
	Long: `mqa scores dataset metadata records against the FAIR+Context rubric
(Findability, Accessibility, Interoperability, Reusability, Context),
producing a 0-405 score, a rating, and a per-indicator audit trail for
every dataset in a catalog.

Records come from a CKAN catalog API or from a local JSON/CSV dump; by
default the whole pipeline runs: fetch or load, score, and write the
reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("data-dir", "d", "data", "Directory for raw catalog dumps")
	pf.StringP("results-dir", "r", "results", "Directory for result files")
	pf.StringP("format", "f", "console", "Report format (console|json|markdown|csv)")
	pf.StringP("output", "o", "", "Write the rendered report to a file instead of stdout")
	pf.IntP("sample", "s", 0, "Score only the first N datasets (0 for all)")
	pf.Int("concurrency", 4, "Datasets scored in parallel (1 for strictly sequential)")
	pf.Bool("offline", false, "Skip network probes; reachability indicators fail")
	pf.Bool("per-resource", false, "Scope Interoperability predicates to one resource at a time (deviation from the reference rubric)")
	pf.Int("probe-timeout", 5, "Seconds per URL reachability probe")
	pf.String("catalog-url", "", "CKAN package-list endpoint (defaults to the Berlin portal)")
	pf.Int("page-limit", 500, "Records per catalog page request")
	pf.String("history-db", "", "SQLite history database (defaults to <results-dir>/history.db)")
	pf.BoolP("quiet", "q", false, "Suppress non-essential output")
	pf.BoolP("verbose", "v", false, "Verbose progress and schema warnings")

	viper.BindPFlag("dataDir", pf.Lookup("data-dir"))
	viper.BindPFlag("resultsDir", pf.Lookup("results-dir"))
	viper.BindPFlag("format", pf.Lookup("format"))
	viper.BindPFlag("output", pf.Lookup("output"))
	viper.BindPFlag("sample", pf.Lookup("sample"))
	viper.BindPFlag("concurrency", pf.Lookup("concurrency"))
	viper.BindPFlag("offline", pf.Lookup("offline"))
	viper.BindPFlag("perResource", pf.Lookup("per-resource"))
	viper.BindPFlag("probeTimeout", pf.Lookup("probe-timeout"))
	viper.BindPFlag("catalogUrl", pf.Lookup("catalog-url"))
	viper.BindPFlag("pageLimit", pf.Lookup("page-limit"))
	viper.BindPFlag("historyDb", pf.Lookup("history-db"))
	viper.BindPFlag("quiet", pf.Lookup("quiet"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
}
