package engine

import "fmt"

// Scope selects which branches a run operates on: the local repository or a
// single named remote. The zero value is invalid; construct via LocalScope,
// RemoteScope, or ParseScope.
type Scope struct {
	remote string
	local  bool
}

// LocalScope returns the scope targeting local branches.
func LocalScope() Scope {
	return Scope{local: true}
}

// RemoteScope returns the scope targeting branches on the named remote.
func RemoteScope(name string) Scope {
	return Scope{remote: name}
}

// ParseScope validates the raw CLI flag pair and returns the corresponding
// scope. Exactly one of local/remote must be selected, and a selected remote
// must carry a name; anything else is a ConfigError.
func ParseScope(local, remoteSet bool, remoteName string) (Scope, error) {
	switch {
	case local && remoteSet:
		return Scope{}, configErrorf("--local and --remote are mutually exclusive")
	case !local && !remoteSet:
		return Scope{}, configErrorf("either --local or --remote is required")
	case remoteSet && remoteName == "":
		return Scope{}, configErrorf("--remote requires a remote name")
	case local:
		return LocalScope(), nil
	default:
		return RemoteScope(remoteName), nil
	}
}

// IsLocal reports whether the scope targets local branches.
func (s Scope) IsLocal() bool {
	return s.local
}

// Remote returns the remote name, or "" for the local scope.
func (s Scope) Remote() string {
	return s.remote
}

// String returns a human-readable description of the scope.
func (s Scope) String() string {
	if s.local {
		return "local"
	}
	return fmt.Sprintf("remote %q", s.remote)
}
