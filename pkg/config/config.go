// Package config holds the runtime configuration: where device nodes live,
// which name prefix marks a candidate, and which alias directories to search
// for symlinks.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/eddy-geek/lsinput/pkg/errors"
	"github.com/eddy-geek/lsinput/pkg/logging"
)

// ConfigFileName is the config file path looked up under the XDG config home.
const ConfigFileName = "lsinput/config.toml"

// Config describes one lsinput run.
type Config struct {
	DeviceDir    string   `toml:"device_dir"`
	DevicePrefix string   `toml:"device_prefix"`
	AliasDirs    []string `toml:"alias_dirs"`
	ShowIDs      bool     `toml:"show_ids"`
}

// Default returns the built-in configuration: the kernel's evdev nodes and
// the udev-maintained alias directories.
func Default() *Config {
	return &Config{
		DeviceDir:    "/dev/input",
		DevicePrefix: "event",
		AliasDirs: []string{
			"/dev/input/by-path",
			"/dev/input/by-id",
		},
	}
}

// Load returns the configuration from path, or from the XDG config home when
// path is empty. A missing file yields the defaults, not an error; a file
// that exists but cannot be read or parsed is an error. Paths in the file
// may use a leading "~".
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(xdg.ConfigHome, ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	cfg.DeviceDir = ExpandPath(cfg.DeviceDir)
	for i, dir := range cfg.AliasDirs {
		cfg.AliasDirs[i] = ExpandPath(dir)
	}

	logger.Debug().Str("path", path).Msg("Loaded config file")
	return cfg, nil
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return os.ExpandEnv(path)
}
