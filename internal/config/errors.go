package config

import (
	"errors"
	"fmt"
)

// Error reports an invalid or incomplete configuration. It is always fatal to
// the current invocation.
type Error struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error. The %w verb is honoured.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Message: err.Error(), Err: errors.Unwrap(err)}
}

// IsError reports whether err is, or wraps, a configuration Error.
func IsError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr)
}

// Require returns the value of an optional field or an Error naming it.
func Require(field string, v *string) (string, error) {
	if v == nil || *v == "" {
		return "", Errorf("missing required configuration field %q", field)
	}
	return *v, nil
}
