package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file, placed at the repo root.
const LocalConfigFileName = ".sweep.toml"

// LocalConfig holds per-repo configuration overrides from .sweep.toml.
// Zero-value fields indicate "not set" (inherit from global).
type LocalConfig struct {
	Protect []string `toml:"protect"`
	Into    string   `toml:"into"`
	Remote  string   `toml:"remote"`
}

// LoadLocal reads a per-repo .sweep.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	for i, name := range local.Protect {
		if name == "" {
			return nil, fmt.Errorf("invalid protect[%d] in %s: empty branch name", i, configFile)
		}
	}

	return &local, nil
}
