// Package config layers the mqa configuration: defaults, an optional
// .mqarc file, MQA_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the assembled runtime configuration.
type Config struct {
	CatalogURL string `mapstructure:"catalogUrl"`
	PageLimit  int    `mapstructure:"pageLimit"`

	DataDir    string `mapstructure:"dataDir"`
	ResultsDir string `mapstructure:"resultsDir"`

	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`

	Sample      int  `mapstructure:"sample"`
	Concurrency int  `mapstructure:"concurrency"`
	Offline     bool `mapstructure:"offline"`
	PerResource bool `mapstructure:"perResource"`

	// ProbeTimeoutSeconds bounds one reachability probe.
	ProbeTimeoutSeconds int `mapstructure:"probeTimeout"`

	HistoryDB string `mapstructure:"historyDb"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// ProbeTimeout returns the per-probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// Load assembles the configuration from all sources.
func Load() (*Config, error) {
	viper.SetDefault("catalogUrl", "https://datenregister.berlin.de/api/3/action/current_package_list_with_resources")
	viper.SetDefault("pageLimit", 500)
	viper.SetDefault("dataDir", "data")
	viper.SetDefault("resultsDir", "results")
	viper.SetDefault("format", "console")
	viper.SetDefault("sample", 0)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("offline", false)
	viper.SetDefault("perResource", false)
	viper.SetDefault("probeTimeout", 5)
	viper.SetDefault("historyDb", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	for _, path := range []string{".mqarc.json", ".mqarc.yaml", ".mqarc.yml"} {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("MQA")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	switch cfg.Format {
	case "console", "json", "markdown", "csv":
	default:
		return fmt.Errorf("invalid format: %s (must be console, json, markdown, or csv)", cfg.Format)
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if cfg.PageLimit < 1 {
		return fmt.Errorf("page limit must be at least 1")
	}
	if cfg.Sample < 0 {
		return fmt.Errorf("sample must not be negative")
	}
	if cfg.ProbeTimeoutSeconds < 1 {
		return fmt.Errorf("probe timeout must be at least one second")
	}
	return nil
}
