// Command librlib builds the rlib C ABI as a shared library:
//
//	go build -buildmode=c-shared -o librlib.so ./cmd/librlib
//
// The generated header declares rlib_add, rlib_multiply, rlib_exponent,
// rlib_divide and rlib_error_message. Hosts such as Python ctypes load the
// result directly. Go programs should import pkg/rlib instead; a Go host
// cannot load a second Go runtime.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"github.com/rlib-dev/rlib-go/internal/core"
)

// messages holds one C string per known code plus the fallback. They are
// allocated once and never freed, so callers may keep the pointers.
var (
	messages = func() map[core.ErrorCode]*C.char {
		m := make(map[core.ErrorCode]*C.char, len(core.Codes()))
		for _, code := range core.Codes() {
			m[code] = C.CString(core.Message(code))
		}
		return m
	}()
	unknownMessage = C.CString(core.Message(core.ErrorCode(-1)))
)

//export rlib_add
func rlib_add(a, b C.int) C.int {
	return C.int(core.Add(int32(a), int32(b)))
}

//export rlib_multiply
func rlib_multiply(a, b C.int) C.int {
	return C.int(core.Multiply(int32(a), int32(b)))
}

// rlib_exponent returns 0 for a negative exponent. Callers that need to tell
// that apart from a real zero must validate exp first.
//
//export rlib_exponent
func rlib_exponent(base, exp C.int) C.int {
	return C.int(exponentOrZero(int32(base), int32(exp)))
}

// rlib_divide writes the quotient to result only when it returns OK.
//
//export rlib_divide
func rlib_divide(a, b C.int, result *C.int) C.int {
	if result == nil {
		return C.int(divideInto(int32(a), int32(b), nil))
	}
	var q int32
	code := divideInto(int32(a), int32(b), &q)
	if code == core.OK {
		*result = C.int(q)
	}
	return C.int(code)
}

//export rlib_error_message
func rlib_error_message(code C.int) *C.char {
	if c, ok := messageCode(int32(code)); ok {
		return messages[c]
	}
	return unknownMessage
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
