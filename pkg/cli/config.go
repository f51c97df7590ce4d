package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configAppDir   = "provhash"
	configFileName = "config.yaml"
)

// UserConfig is the optional per-user configuration, read from
// $XDG_CONFIG_HOME/provhash/config.yaml (or the OS equivalent). Flags
// override everything here.
type UserConfig struct {
	// FloatPrecision overrides the default significant-digit precision.
	FloatPrecision int `yaml:"float_precision"`
	// IgnoreNames lists directory entry names excluded from folder hashing.
	IgnoreNames []string `yaml:"ignore_names"`
	// LogJSON switches logging to JSON output.
	LogJSON bool `yaml:"log_json"`
}

// DefaultConfigPath returns the default user config location.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, configAppDir, configFileName), nil
}

// ReadUserConfig loads the user config. With an empty path the default
// location is used and a missing file yields an empty config; an explicit
// path must exist.
func ReadUserConfig(path string) (*UserConfig, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return &UserConfig{}, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &UserConfig{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg UserConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
