// Package searcherr defines the error kinds raised by the search core.
// Every violated precondition surfaces as one of the sentinel errors below,
// wrapped in an *AppError carrying a human-readable message, so callers can
// branch on kind with errors.Is while still getting a useful message.
package searcherr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a violated precondition: a negative id, a
	// duplicate id on add, a control character in a word, an empty query
	// term, an isolated "-", or a double leading "-".
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange marks a lookup against a document id outside the
	// current index set.
	ErrOutOfRange = errors.New("out of range")
)

// AppError pairs a sentinel error kind with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Newf wraps sentinel with a formatted message.
func Newf(sentinel error, format string, args ...any) *AppError {
	return &AppError{Err: sentinel, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument builds an ErrInvalidArgument-wrapped error.
func InvalidArgument(format string, args ...any) error {
	return Newf(ErrInvalidArgument, format, args...)
}

// OutOfRange builds an ErrOutOfRange-wrapped error.
func OutOfRange(format string, args ...any) error {
	return Newf(ErrOutOfRange, format, args...)
}
