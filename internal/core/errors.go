package core

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching. Each typed error below unwraps to one of them.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrInvalidState  = errors.New("invalid state")
	ErrNotFound      = errors.New("not found")
)

// ConfigurationError reports an invalid construction parameter.
type ConfigurationError struct {
	Op  string // Operation that rejected the value (e.g. "NewLoop")
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrConfiguration, e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvalidStateError reports an operation invoked in a state that forbids it.
type InvalidStateError struct {
	Op  string
	Msg string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidState, e.Msg)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// NotFoundError reports a reference to an entity that does not exist.
type NotFoundError struct {
	Op string
	ID EntityID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: entity %d: %s", e.Op, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Configf builds a ConfigurationError with a formatted message.
func Configf(op, format string, args ...any) error {
	return &ConfigurationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStatef builds an InvalidStateError with a formatted message.
func InvalidStatef(op, format string, args ...any) error {
	return &InvalidStateError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
