package main

import "github.com/rlib-dev/rlib-go/internal/core"

// exponentOrZero collapses a rejected exponent to 0, the only value the C
// signature can carry.
func exponentOrZero(base, exp int32) int32 {
	v, code := core.Exponent(base, exp)
	if code != core.OK {
		return 0
	}
	return v
}

// divideInto stores the quotient in out only when it returns OK. A nil out is
// InvalidArgument.
func divideInto(a, b int32, out *int32) core.ErrorCode {
	if out == nil {
		return core.InvalidArgument
	}
	v, code := core.Divide(a, b)
	if code != core.OK {
		return code
	}
	*out = v
	return core.OK
}

// messageCode maps a raw code onto a known one; ok is false for codes that
// get the fallback text.
func messageCode(code int32) (core.ErrorCode, bool) {
	for _, c := range core.Codes() {
		if int32(c) == code {
			return c, true
		}
	}
	return 0, false
}
