package config

import "slices"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
//
// Fields replace rather than accumulate: a per-repo protect list stands on
// its own, mirroring how an explicit --skip override replaces the persisted
// set instead of merging with it.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if len(local.Protect) > 0 {
		merged.Protect = slices.Clone(local.Protect)
	}
	if local.Into != "" {
		merged.Into = local.Into
	}
	if local.Remote != "" {
		merged.Remote = local.Remote
	}

	return &merged
}
