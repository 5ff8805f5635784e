// Package engine decides which merged branches are safe to delete.
//
// The engine is a pure library: it resolves the protection set and merge
// target from injected configuration, compiles the user-supplied patterns,
// filters an externally supplied candidate list through a fixed three-stage
// pipeline, and produces an immutable Plan. It never talks to git itself;
// candidate enumeration and deletion belong to the internal/git collaborator.
package engine
