// Package core holds the arithmetic semantics shared by every rlib engine.
//
// All operations work on 32-bit signed integers with two's-complement
// wrapping. Failures are reported as an ErrorCode returned next to the value;
// the value is meaningful only when the code is OK.
package core

// ErrorCode is the closed set of failure tags crossing the C boundary.
type ErrorCode int32

const (
	OK              ErrorCode = 0
	DivisionByZero  ErrorCode = 1
	InvalidArgument ErrorCode = 2
)

const unknownMessage = "Unknown error"

func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "OK"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Message returns the fixed human-readable text for code. Unknown codes get a
// generic fallback.
func Message(code ErrorCode) string {
	switch code {
	case OK:
		return "Success"
	case DivisionByZero:
		return "Division by zero"
	case InvalidArgument:
		return "Invalid argument"
	default:
		return unknownMessage
	}
}

// Codes lists every known code in wire order.
func Codes() []ErrorCode {
	return []ErrorCode{OK, DivisionByZero, InvalidArgument}
}

// Add returns a + b.
func Add(a, b int32) int32 {
	return a + b
}

// Multiply returns a * b.
func Multiply(a, b int32) int32 {
	return a * b
}

// Exponent returns base raised to exp using square-and-multiply. exp == 0
// yields 1 for every base, including 0. A negative exp is rejected with
// InvalidArgument.
func Exponent(base, exp int32) (int32, ErrorCode) {
	if exp < 0 {
		return 0, InvalidArgument
	}
	result := int32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, OK
}

// Divide returns the truncated quotient a / b. The quotient is zero and must
// not be used unless the returned code is OK.
func Divide(a, b int32) (int32, ErrorCode) {
	if b == 0 {
		return 0, DivisionByZero
	}
	return a / b, OK
}
