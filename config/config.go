// Package config resolves hopgraph run settings from defaults, an optional
// .hopgraph.yaml file, HOPGRAPH_* environment variables and CLI flags bound
// into the same viper instance.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hopgraph/dijkstra"
	"github.com/katalvlaran/hopgraph/report"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix is the environment variable prefix: top → HOPGRAPH_TOP.
const EnvPrefix = "HOPGRAPH"

// Keys, shared by defaults, flags and the config file.
const (
	KeyTop         = "top"
	KeyFormat      = "format"
	KeyWorkers     = "workers"
	KeyCloseness   = "closeness"
	KeyTieBreak    = "tie_break"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyDOT         = "dot"
	KeyMetricsFile = "metrics_file"
	KeyMaxNode     = "max_node"
)

// Config holds all runtime configuration for an analysis run.
type Config struct {
	Top         int    `mapstructure:"top"`
	Format      string `mapstructure:"format"`
	Workers     int    `mapstructure:"workers"`
	Closeness   bool   `mapstructure:"closeness"`
	TieBreak    string `mapstructure:"tie_break"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	DOT         string `mapstructure:"dot"`
	MetricsFile string `mapstructure:"metrics_file"`
	MaxNode     int    `mapstructure:"max_node"`
}

// SetDefaults installs the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTop, 10)
	v.SetDefault(KeyFormat, string(report.FormatTable))
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyCloseness, true)
	v.SetDefault(KeyTieBreak, dijkstra.TieFirstDiscovered.String())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyDOT, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyMaxNode, 1<<24-1)
}

// ReadFile loads the config file into v. An explicit path must exist;
// without one, .hopgraph.yaml is searched in the working directory and then
// the home directory, and its absence is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".hopgraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}

	return nil
}

// Load applies defaults and environment overrides to v, then decodes and
// validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Top < 0 {
		errs = append(errs, fmt.Errorf("%w: top must be >= 0, got %d", ErrInvalid, c.Top))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers))
	}
	if c.MaxNode < 0 {
		errs = append(errs, fmt.Errorf("%w: max_node must be >= 0, got %d", ErrInvalid, c.MaxNode))
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, err := dijkstra.ParseTieBreak(c.TieBreak); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log_level: %v", ErrInvalid, err))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalid, c.LogFormat))
	}

	return errors.Join(errs...)
}

// ReportFormat returns the parsed output format.
func (c Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.FormatTable
	}

	return f
}

// TieBreakPolicy returns the parsed representative-path policy.
func (c Config) TieBreakPolicy() dijkstra.TieBreak {
	tb, err := dijkstra.ParseTieBreak(c.TieBreak)
	if err != nil {
		return dijkstra.TieFirstDiscovered
	}

	return tb
}

// NewLogger builds the run logger from LogLevel and LogFormat.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
