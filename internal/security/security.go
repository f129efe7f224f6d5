package security

// Package security defines the error type used for identity-lookup and
// resource-limit failures. These are reported separately from plain
// errno failures: a privilege-change call that the kernel refuses
// returns the errno, while a lookup that finds nothing (or a database
// that cannot be read) produces a *security.Error naming the key that
// was queried.

import (
	"errors"
	"fmt"
)

// Error is a lookup-integrity or privilege failure surfaced to callers.
// The message always names the operation and, where one exists, the
// queried key.
type Error struct {
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a security Error with a formatted message. Formatting
// is unbounded on purpose: queried keys may be caller-influenced and
// must never be truncated into a fixed buffer.
func Errorf(op, format string, args ...interface{}) *Error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to the message.
func Wrap(op string, err error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err is (or wraps) a security Error.
func Is(err error) bool {
	var se *Error
	return errors.As(err, &se)
}
