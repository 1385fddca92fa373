package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/binsight/binsight/errors"
)

// persisted mirrors Config with toml tags; viper reads mapstructure tags,
// go-toml writes these.
type persisted struct {
	Requires string `toml:"requires,omitempty"`
	Report   struct {
		MalformedCells string `toml:"malformed_cells"`
		ImplicitLookup bool   `toml:"implicit_lookup"`
		NumericColumns bool   `toml:"numeric_columns"`
	} `toml:"report"`
	Log struct {
		JSON bool `toml:"json"`
	} `toml:"log"`
}

// WriteDefault writes a default config file at path, creating parent
// directories. Refuses to clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists: %s", path)
	}

	var p persisted
	p.Report.MalformedCells = "empty"
	p.Report.ImplicitLookup = true
	p.Report.NumericColumns = false
	p.Log.JSON = false

	data, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// DefaultUserPath returns ~/.binsight/config.toml.
func DefaultUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".binsight", "config.toml"), nil
}
