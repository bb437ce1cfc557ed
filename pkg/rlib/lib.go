package rlib

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rlib-dev/rlib-go/internal/backend"
	"github.com/rlib-dev/rlib-go/pkg/rlib/logging"
)

// Library is an opened rlib engine. It is safe for concurrent use.
type Library struct {
	cfg    Config
	eng    engine
	log    logging.Logger
	obs    Observer
	closed atomic.Bool
}

// Open prepares the engine selected by cfg.Backend. For BackendNative the
// candidate directories are searched in order and the first library found is
// loaded; ErrLibraryNotFound is returned when none holds one.
func Open(cfg Config) (*Library, error) {
	l := &Library{cfg: cfg, log: cfg.Logger, obs: cfg.Observer}
	if l.log == nil {
		l.log = logging.Nop()
	}
	if l.obs == nil {
		l.obs = nopObserver{}
	}

	switch cfg.Backend {
	case BackendBuiltin:
		l.eng = builtinEngine{}
	case BackendNative:
		lib, err := backend.Open(backend.CandidatePaths(cfg.searchPaths()))
		if err != nil {
			l.log.Error(context.Background(), "native library unavailable", "error", err)
			return nil, remapError(err)
		}
		l.eng = nativeEngine{lib: lib}
	default:
		return nil, fmt.Errorf("rlib: unknown backend %v", cfg.Backend)
	}

	l.log = l.log.With("backend", cfg.Backend.String())
	l.log.Debug(context.Background(), "library opened", "path", l.eng.path())
	return l, nil
}

// Close marks the library closed. The native library itself stays mapped for
// the life of the process. A second Close returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if !l.closed.CompareAndSwap(false, true) {
		return ErrLibraryClosed
	}
	return nil
}

// Backend reports which engine the library runs on.
func (l *Library) Backend() Backend { return l.cfg.Backend }

// Path returns the native library file, or "" for the builtin backend.
func (l *Library) Path() string { return l.eng.path() }

// Add returns a + b, wrapping on overflow.
func (l *Library) Add(a, b int32) int32 {
	v := l.eng.add(a, b)
	l.obs.Observe(OpAdd, OK)
	return v
}

// Multiply returns a * b, wrapping on overflow.
func (l *Library) Multiply(a, b int32) int32 {
	v := l.eng.multiply(a, b)
	l.obs.Observe(OpMultiply, OK)
	return v
}

// Exponent returns base raised to exp, wrapping on overflow. exp == 0 yields
// 1 for every base. A negative exp is rejected with ErrInvalidArgument before
// the engine is called.
func (l *Library) Exponent(base, exp int32) (int32, error) {
	if l.closed.Load() {
		return 0, ErrLibraryClosed
	}
	if exp < 0 {
		return 0, l.fail(OpExponent, InvalidArgument)
	}
	v := l.eng.exponent(base, exp)
	l.obs.Observe(OpExponent, OK)
	return v, nil
}

// Divide returns the truncated quotient a / b. It fails with
// ErrDivisionByZero when b is 0.
func (l *Library) Divide(a, b int32) (int32, error) {
	if l.closed.Load() {
		return 0, ErrLibraryClosed
	}
	v, code := l.eng.divide(a, b)
	if code != OK {
		return 0, l.fail(OpDivide, code)
	}
	l.obs.Observe(OpDivide, OK)
	return v, nil
}

func (l *Library) fail(op Op, code ErrorCode) error {
	err := &Error{Code: code, Op: op, Message: l.eng.errorMessage(code)}
	l.obs.Observe(op, code)
	l.log.Debug(context.Background(), "operation failed", "op", string(op), "code", code.String(), "message", err.Message)
	return err
}
