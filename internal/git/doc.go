// Package git is the VCS collaborator for sweep: it enumerates branches
// already merged into a target, deletes branches locally or on a remote, and
// reads persisted settings from git config. All operations shell out to the
// git CLI through the internal/cmd helpers.
//
// The engine never calls git directly. This package hands it a pre-scoped
// candidate list (current branch, tracked upstream, merge target, and remote
// HEAD aliases already removed) and later executes the plan the engine built.
package git
