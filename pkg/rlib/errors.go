package rlib

import (
	"errors"
	"fmt"

	"github.com/rlib-dev/rlib-go/internal/backend"
	"github.com/rlib-dev/rlib-go/internal/core"
)

// ErrorCode is the failure tag reported by the native library.
type ErrorCode = core.ErrorCode

const (
	OK              = core.OK
	DivisionByZero  = core.DivisionByZero
	InvalidArgument = core.InvalidArgument
)

var (
	// ErrDivisionByZero matches any *Error carrying DivisionByZero. Compare
	// with errors.Is; do not modify it.
	ErrDivisionByZero = &Error{Code: DivisionByZero, Message: core.Message(DivisionByZero)}

	// ErrInvalidArgument matches any *Error carrying InvalidArgument. Compare
	// with errors.Is; do not modify it.
	ErrInvalidArgument = &Error{Code: InvalidArgument, Message: core.Message(InvalidArgument)}

	// ErrLibraryNotFound reports that none of the candidate locations held
	// the native library.
	ErrLibraryNotFound = errors.New("rlib: native library not found")

	// ErrNotBuilt reports that the native backend was requested from a binary
	// built without the rlib_ffi tag.
	ErrNotBuilt = errors.New("rlib: native bindings not built (rebuild with -tags rlib_ffi)")

	// ErrLibraryClosed is returned by operations on a closed Library and by a
	// second Close.
	ErrLibraryClosed = errors.New("rlib: library closed")
)

// Error is a native error code translated into a Go error. Its text is the
// message the library reports for the code.
type Error struct {
	Code    ErrorCode
	Op      Op
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return core.Message(e.Code)
	}
	return e.Message
}

// Is reports whether target is an *Error with the same code, so the
// package sentinels match errors from any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// remapError converts backend errors to the public sentinels.
func remapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, backend.ErrLibraryNotFound):
		return fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	default:
		return fmt.Errorf("rlib: %w", err)
	}
}
