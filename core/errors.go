package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is so
// callers can test the category without caring about the details.
var (
	// ErrConfiguration indicates a logger was asked to do something its
	// current state does not allow, such as opening a second write stream.
	ErrConfiguration = errors.New("logger configuration error")
	// ErrIncompatibleTarget indicates the log file path exists but is not
	// a regular file.
	ErrIncompatibleTarget = errors.New("incompatible log file target")
)

// ConfigurationError reports an operation rejected because of the
// logger's state.
type ConfigurationError struct {
	Op     string
	Reason string
}

// NewConfigurationError creates a ConfigurationError
func NewConfigurationError(op, reason string) *ConfigurationError {
	return &ConfigurationError{Op: op, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	if e.Op == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IncompatibleTargetError reports a write stream path that exists but
// is a directory or another non-regular file.
type IncompatibleTargetError struct {
	Path string
	Mode string
}

// NewIncompatibleTargetError creates an IncompatibleTargetError
func NewIncompatibleTargetError(path, mode string) *IncompatibleTargetError {
	return &IncompatibleTargetError{Path: path, Mode: mode}
}

func (e *IncompatibleTargetError) Error() string {
	return fmt.Sprintf("write stream path is not a file: %s (%s)", e.Path, e.Mode)
}

// Is makes errors.Is(err, ErrIncompatibleTarget) hold
func (e *IncompatibleTargetError) Is(target error) bool {
	return target == ErrIncompatibleTarget
}
