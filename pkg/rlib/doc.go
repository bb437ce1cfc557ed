// Package rlib exposes the rlib integer arithmetic library to Go.
//
// Four operations work on 32-bit signed integers with two's-complement
// wrapping: Add, Multiply, Exponent and Divide. Division by zero and negative
// exponents are reported as *Error values matching ErrDivisionByZero and
// ErrInvalidArgument; their text is the native library's message.
//
// Two backends are available. BackendBuiltin, the default, runs the
// arithmetic in-process. BackendNative loads the shared rlib library through
// libffi, probing Config.SearchPaths in order, and translates every returned
// error code. It requires building with -tags rlib_ffi.
//
//	lib, err := rlib.Open(rlib.Config{Backend: rlib.BackendNative})
//	if err != nil {
//	    return err
//	}
//	q, err := lib.Divide(10, 0)
//	if errors.Is(err, rlib.ErrDivisionByZero) {
//	    // err.Error() == "Division by zero"
//	}
//
// The package-level functions share one Library opened on first use from
// RLIB_BACKEND and RLIB_LIBRARY_PATH. They panic if it cannot be opened.
package rlib
