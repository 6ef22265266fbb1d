// Package config loads command-line settings from flags, PARETODP_*
// environment variables and an optional YAML/TOML/JSON file, in that order of
// precedence, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/logging"
)

// EnvPrefix prefixes every environment override, e.g. PARETODP_WORKERS.
const EnvPrefix = "PARETODP"

// Keys shared by flags, environment and config file.
const (
	KeyCriterion   = "criterion"
	KeyClusters    = "clusters"
	KeyWorkers     = "workers"
	KeyIncremental = "incremental"
	KeyVerify      = "verify"
	KeyOutput      = "out"
	KeyReport      = "report"
	KeyInputOrder  = "input-order"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyMetricsFile = "metrics-file"
	KeyConcurrency = "concurrency"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the merged CLI configuration.
type Config struct {
	Criterion   string `mapstructure:"criterion"`
	Clusters    int    `mapstructure:"clusters"` // 0 selects the default max(3, floor(sqrt(N)))
	Workers     int    `mapstructure:"workers"`  // 0 selects runtime.NumCPU()
	Incremental bool   `mapstructure:"incremental"`
	Verify      bool   `mapstructure:"verify"`
	Output      string `mapstructure:"out"`
	Report      string `mapstructure:"report"` // "", "json" or "yaml"
	InputOrder  bool   `mapstructure:"input-order"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	MetricsFile string `mapstructure:"metrics-file"`
	Concurrency int    `mapstructure:"concurrency"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Criterion:   cost.Medoids.String(),
		Incremental: true,
		LogLevel:    "info",
		LogFormat:   "text",
		Concurrency: 1,
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyCriterion, d.Criterion)
	v.SetDefault(KeyClusters, d.Clusters)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyIncremental, d.Incremental)
	v.SetDefault(KeyVerify, d.Verify)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyReport, d.Report)
	v.SetDefault(KeyInputOrder, d.InputOrder)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)
	v.SetDefault(KeyConcurrency, d.Concurrency)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file (if non-empty), binds flags and decodes the result.
// Flags that were not set on the command line fall back to env, file and
// defaults.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}

// Validate checks the values that cannot be checked by type alone.
func (c Config) Validate() error {
	if _, err := cost.ParseCriterion(c.Criterion); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Clusters < 0 {
		return fmt.Errorf("%w: clusters must be >= 0, got %d", ErrInvalid, c.Clusters)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	switch strings.ToLower(c.Report) {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: report format %q", ErrInvalid, c.Report)
	}

	return nil
}

// CriterionValue returns the parsed criterion. Call after Validate.
func (c Config) CriterionValue() cost.Criterion {
	cr, _ := cost.ParseCriterion(c.Criterion)
	return cr
}
