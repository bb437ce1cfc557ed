package backend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotBuilt reports that the libffi binding was not compiled into the
	// current binary.
	ErrNotBuilt = errors.New("rlib/internal/backend: native bindings not built")

	// ErrLibraryNotFound reports that no candidate location held a loadable
	// native library.
	ErrLibraryNotFound = errors.New("rlib/internal/backend: native library not found")
)

// NotFoundError lists every location that was tried. It matches
// ErrLibraryNotFound with errors.Is.
type NotFoundError struct {
	Filename string
	Tried    []string
}

func (e *NotFoundError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("could not find %s: no candidate locations configured", e.Filename)
	}
	return fmt.Sprintf("could not find %s in any expected location: %s", e.Filename, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrLibraryNotFound
}

// SymbolError reports an entry point missing from a loaded library.
type SymbolError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: symbol %s: %v", e.Path, e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// Entry point names exported by every rlib build.
const (
	SymbolAdd          = "rlib_add"
	SymbolMultiply     = "rlib_multiply"
	SymbolExponent     = "rlib_exponent"
	SymbolDivide       = "rlib_divide"
	SymbolErrorMessage = "rlib_error_message"
)

// Symbols lists the entry points in the order they are prepared.
func Symbols() []string {
	return []string{SymbolAdd, SymbolMultiply, SymbolExponent, SymbolDivide, SymbolErrorMessage}
}
