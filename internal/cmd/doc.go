// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// sweep shells out to the git CLI rather than using a Go git library. This
// approach is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, credential helpers, aliases, etc.).
package cmd
