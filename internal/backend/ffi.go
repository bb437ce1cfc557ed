//go:build rlib_ffi && (linux || darwin || freebsd) && (amd64 || arm64)

package backend

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"golang.org/x/sys/unix"
)

// Built reports whether the libffi binding is compiled into this binary.
const Built = true

// Library is a loaded native rlib with every entry point prepared. It is
// safe for concurrent use and is never unloaded.
type Library struct {
	path string
	lib  ffi.Lib

	add          ffi.Fun
	multiply     ffi.Fun
	exponent     ffi.Fun
	divide       ffi.Fun
	errorMessage ffi.Fun
}

// Open loads the first readable library in paths and prepares its entry
// points.
func Open(paths []string) (*Library, error) {
	path, err := Locate(paths)
	if err != nil {
		return nil, err
	}

	lib, err := ffi.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", path, err)
	}

	l := &Library{path: path, lib: lib}
	if err := l.prep(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Library) prep() error {
	specs := []struct {
		fun  *ffi.Fun
		name string
		ret  *ffi.Type
		args []*ffi.Type
	}{
		{&l.add, SymbolAdd, &ffi.TypeSint32, []*ffi.Type{&ffi.TypeSint32, &ffi.TypeSint32}},
		{&l.multiply, SymbolMultiply, &ffi.TypeSint32, []*ffi.Type{&ffi.TypeSint32, &ffi.TypeSint32}},
		{&l.exponent, SymbolExponent, &ffi.TypeSint32, []*ffi.Type{&ffi.TypeSint32, &ffi.TypeSint32}},
		{&l.divide, SymbolDivide, &ffi.TypeSint32, []*ffi.Type{&ffi.TypeSint32, &ffi.TypeSint32, &ffi.TypePointer}},
		{&l.errorMessage, SymbolErrorMessage, &ffi.TypePointer, []*ffi.Type{&ffi.TypeSint32}},
	}

	for _, s := range specs {
		fun, err := l.lib.Prep(s.name, s.ret, s.args...)
		if err != nil {
			return &SymbolError{Path: l.path, Symbol: s.name, Err: err}
		}
		*s.fun = fun
	}
	return nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

func (l *Library) Add(a, b int32) int32 {
	return call2(l.add, a, b)
}

func (l *Library) Multiply(a, b int32) int32 {
	return call2(l.multiply, a, b)
}

// Exponent forwards to rlib_exponent unchanged. Negative exponents are the
// caller's to reject.
func (l *Library) Exponent(base, exp int32) int32 {
	return call2(l.exponent, base, exp)
}

// Divide calls rlib_divide and returns the quotient and the raw error code.
// The quotient is read from the output parameter only when the code is 0.
// MinInt32 / -1 is answered here: native idiv traps on it even when the
// library was compiled with wrapping arithmetic.
func (l *Library) Divide(a, b int32) (int32, int32) {
	if a == math.MinInt32 && b == -1 {
		return math.MinInt32, 0
	}

	var out int32
	outPtr := &out

	var rc ffi.Arg
	l.divide.Call(unsafe.Pointer(&rc), unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&outPtr))

	code := int32(rc)
	if code != 0 {
		return 0, code
	}
	return out, code
}

// ErrorMessage returns the static message the library holds for code.
func (l *Library) ErrorMessage(code int32) string {
	var msg *byte
	l.errorMessage.Call(unsafe.Pointer(&msg), unsafe.Pointer(&code))
	if msg == nil {
		return ""
	}
	return unix.BytePtrToString(msg)
}

// Small integer returns are widened to ffi.Arg by libffi.
func call2(fun ffi.Fun, a, b int32) int32 {
	var rc ffi.Arg
	fun.Call(unsafe.Pointer(&rc), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return int32(rc)
}
