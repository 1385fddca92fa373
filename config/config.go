// Package config loads the binsight configuration.
//
// Configuration is TOML, read with Viper. Search order: binsight.toml in the
// working directory (walking up the directory tree), then
// ~/.binsight/config.toml. All settings have defaults; a missing config file
// is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/binsight/binsight/errors"
	"github.com/binsight/binsight/version"
)

// Config is the binsight tool configuration.
type Config struct {
	// Requires is an optional semver constraint on the binsight binary,
	// so a checked-in project config can pin the tool generation it was
	// written for (e.g. ">= 0.3.0").
	Requires string `mapstructure:"requires"`

	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// ReportConfig configures report generation.
type ReportConfig struct {
	// MalformedCells decides what the per-platform columns hold for a
	// malformed support declaration: "empty" leaves them blank, "render"
	// runs the range logic anyway. The Kind column shows "?" either way.
	MalformedCells string `mapstructure:"malformed_cells"`

	// ImplicitLookup enables inheriting platform-support data from the
	// enclosing type or assembly when an entity declares none.
	ImplicitLookup bool `mapstructure:"implicit_lookup"`

	// NumericColumns adds the 1/0 duplicate columns to the nullable stats
	// report for spreadsheet aggregation.
	NumericColumns bool `mapstructure:"numeric_columns"`
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("report.malformed_cells", "empty")
	v.SetDefault("report.implicit_lookup", true)
	v.SetDefault("report.numeric_columns", false)
	v.SetDefault("log.json", false)
}

// Load reads configuration from the standard search locations.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	return unmarshal(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Report.MalformedCells {
	case "empty", "render":
	default:
		return errors.Newf("report.malformed_cells must be \"empty\" or \"render\", got %q", c.Report.MalformedCells)
	}
	return c.validateRequires()
}

// validateRequires checks the running binary against the config's semver
// constraint. A dev build (untagged) always passes.
func (c *Config) validateRequires() error {
	if c.Requires == "" {
		return nil
	}
	current := version.Get().Version
	if current == "dev" {
		return nil
	}

	ver, err := semver.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid binsight version %s", current)
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return errors.Wrapf(err, "invalid requires constraint %s", c.Requires)
	}
	if !constraint.Check(ver) {
		return errors.Newf("config requires binsight %s, but running %s", c.Requires, current)
	}
	return nil
}

// findProjectConfig searches for binsight.toml by walking up the directory
// tree from the working directory, then falls back to the user config.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err == nil {
		for {
			path := filepath.Join(dir, "binsight.toml")
			if _, err := os.Stat(path); err == nil {
				return path
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".binsight", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
