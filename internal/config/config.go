package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the sweep configuration.
type Config struct {
	// Protect lists branch names that must never be deleted. Empty means the
	// built-in default set applies.
	Protect []string `toml:"protect"`
	// Into is the merge-comparison target, e.g. "origin/main". Empty means
	// the built-in default applies.
	Into string `toml:"into"`
	// Remote is the preferred remote name, used to seed flag completion.
	Remote string `toml:"remote"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// configPath returns the path to the global config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sweep", "config.toml"), nil
}

// Load reads config from ~/.config/sweep/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFile(path)
}

// loadFile reads and validates a config file at the given path.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for i, name := range cfg.Protect {
		if name == "" {
			return Default(), fmt.Errorf("invalid protect[%d] in %s: empty branch name", i, path)
		}
	}

	return cfg, nil
}
