package git

import (
	"context"
	"strings"
)

// ConfigStore reads persisted sweep settings from git config. It satisfies
// engine.ConfigStore, letting operators pin a protection set or merge target
// per repository (`git config sweep.protect "main,release"`).
type ConfigStore struct {
	// Dir is the repository to read from; "" means the working directory.
	Dir string
}

// Lookup returns the value for key and whether git config has it set.
func (s ConfigStore) Lookup(ctx context.Context, key string) (string, bool) {
	out, err := outputGit(ctx, s.Dir, "config", "--get", key)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
