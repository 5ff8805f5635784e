// Package config loads sweep's persisted configuration: a global TOML file at
// ~/.config/sweep/config.toml plus an optional per-repo .sweep.toml override.
// The merged result is exposed to the engine through the Store adapter, so
// the engine only ever sees an injected key/value lookup.
package config
