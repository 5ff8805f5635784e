package config

import (
	"context"
	"strings"

	"github.com/raphi011/sweep/internal/engine"
)

// Store exposes a Config as an engine.ConfigStore. Unset fields report "not
// set" so the engine can fall through to a lower-precedence store or its
// built-in defaults.
type Store struct {
	cfg *Config
}

// NewStore wraps cfg for engine lookups.
func NewStore(cfg *Config) Store {
	return Store{cfg: cfg}
}

// Lookup answers the engine's persisted-configuration keys from the file
// config.
func (s Store) Lookup(_ context.Context, key string) (string, bool) {
	switch key {
	case engine.KeyProtect:
		if len(s.cfg.Protect) > 0 {
			return strings.Join(s.cfg.Protect, ","), true
		}
	case engine.KeyInto:
		if s.cfg.Into != "" {
			return s.cfg.Into, true
		}
	}
	return "", false
}
