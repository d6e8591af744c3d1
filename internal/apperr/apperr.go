// Package apperr defines the error type used across sked. Errors are
// declared as package-level sentinels and formatted with Fmt at the point
// of failure, so callers can still match them with errors.Is.
package apperr

import "fmt"

type Error struct {
	Message string
	base    *Error
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt interpolates the sentinel's message and returns a new error that
// unwraps to the sentinel.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		base:    e,
	}
}

func (e *Error) Unwrap() error {
	if e.base == nil {
		return nil
	}

	return e.base
}
