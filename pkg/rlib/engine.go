package rlib

import (
	"github.com/rlib-dev/rlib-go/internal/backend"
	"github.com/rlib-dev/rlib-go/internal/core"
)

// engine is what a Library dispatches to. exponent is only called with a
// non-negative exp.
type engine interface {
	add(a, b int32) int32
	multiply(a, b int32) int32
	exponent(base, exp int32) int32
	divide(a, b int32) (int32, ErrorCode)
	errorMessage(code ErrorCode) string
	path() string
}

type builtinEngine struct{}

func (builtinEngine) add(a, b int32) int32 { return core.Add(a, b) }
func (builtinEngine) multiply(a, b int32) int32 { return core.Multiply(a, b) }

func (builtinEngine) exponent(base, exp int32) int32 {
	v, _ := core.Exponent(base, exp)
	return v
}

func (builtinEngine) divide(a, b int32) (int32, ErrorCode) { return core.Divide(a, b) }
func (builtinEngine) errorMessage(code ErrorCode) string { return core.Message(code) }
func (builtinEngine) path() string { return "" }

type nativeEngine struct {
	lib *backend.Library
}

func (n nativeEngine) add(a, b int32) int32 { return n.lib.Add(a, b) }
func (n nativeEngine) multiply(a, b int32) int32 { return n.lib.Multiply(a, b) }
func (n nativeEngine) exponent(base, exp int32) int32 { return n.lib.Exponent(base, exp) }

func (n nativeEngine) divide(a, b int32) (int32, ErrorCode) {
	v, code := n.lib.Divide(a, b)
	return v, ErrorCode(code)
}

// errorMessage falls back to the built-in text if the library returns NULL.
func (n nativeEngine) errorMessage(code ErrorCode) string {
	if msg := n.lib.ErrorMessage(int32(code)); msg != "" {
		return msg
	}
	return core.Message(code)
}

func (n nativeEngine) path() string { return n.lib.Path() }
