package engine

import (
	"context"
	"slices"
	"strings"
)

// Keys for persisted configuration lookups. Both internal/config (TOML files)
// and internal/git (git config) answer them.
const (
	KeyProtect = "sweep.protect"
	KeyInto    = "sweep.into"
)

// DefaultProtected is the built-in protection set used when neither an
// override nor a persisted value is present.
var DefaultProtected = []string{"master", "main", "develop"}

// DefaultTarget is the built-in merge-comparison baseline.
const DefaultTarget = "origin/master"

// ConfigStore looks up persisted configuration values. Implementations may
// block (git config shells out), hence the context.
type ConfigStore interface {
	// Lookup returns the raw value for key and whether it was set.
	Lookup(ctx context.Context, key string) (string, bool)
}

// chainStore queries stores in order; the first one that has the key wins.
type chainStore []ConfigStore

func (c chainStore) Lookup(ctx context.Context, key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(ctx, key); ok {
			return v, true
		}
	}
	return "", false
}

// ChainStores composes stores by precedence, highest first.
func ChainStores(stores ...ConfigStore) ConfigStore {
	return chainStore(stores)
}

// ResolveProtection computes the set of branch names that must never be
// deleted. An explicit override replaces the persisted/default set entirely,
// even when it resolves to nothing (e.g. whitespace only). Without an
// override the persisted sweep.protect value applies, and without that the
// built-in default set.
func ResolveProtection(ctx context.Context, store ConfigStore, override string, overrideSet bool) []string {
	if overrideSet {
		return splitNames(override)
	}
	if v, ok := store.Lookup(ctx, KeyProtect); ok {
		return splitNames(v)
	}
	return slices.Clone(DefaultProtected)
}

// ResolveTarget computes the merge-comparison baseline: explicit override,
// then persisted sweep.into, then the built-in default. The target is not
// validated to exist; a nonexistent target surfaces from git, not from here.
func ResolveTarget(ctx context.Context, store ConfigStore, override string) string {
	if override != "" {
		return override
	}
	if v, ok := store.Lookup(ctx, KeyInto); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return DefaultTarget
}

// splitNames splits a comma-delimited list of branch names, trimming
// whitespace and dropping empty entries. Order is preserved.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
