package rlib

// Op names a host-facing operation.
type Op string

const (
	OpAdd      Op = "add"
	OpMultiply Op = "multiply"
	OpExponent Op = "exponent"
	OpDivide   Op = "divide"
)

// Ops lists every operation.
func Ops() []Op {
	return []Op{OpAdd, OpMultiply, OpExponent, OpDivide}
}

// Observer is told the outcome of every operation. Implementations must be
// safe for concurrent use.
type Observer interface {
	Observe(op Op, code ErrorCode)
}

type nopObserver struct{}

func (nopObserver) Observe(Op, ErrorCode) {}
