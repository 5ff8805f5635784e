package engine

import (
	"errors"
	"fmt"
)

// ErrNoCandidates indicates the filter pipeline selected nothing. This is an
// expected outcome, not a failure: the caller reports it and exits with a
// status distinct from real errors.
var ErrNoCandidates = errors.New("no branches to delete")

// ConfigError is a fatal configuration problem: an invalid scope flag
// combination or a pattern that fails to compile. It always aborts the run
// before any branch enumeration happens.
type ConfigError struct {
	msg string
	err error // underlying cause, e.g. a regexp compile error
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// configErrorf builds a ConfigError without an underlying cause.
func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// configError wraps an underlying error as a ConfigError.
func configError(msg string, err error) *ConfigError {
	return &ConfigError{msg: msg, err: err}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
