package rlib

import (
	"fmt"
	"sync"
)

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Init opens the process-wide library used by the package-level functions,
// configured from the environment. It runs once; later calls return the
// first result.
func Init() error {
	defaultOnce.Do(func() {
		cfg, err := ConfigFromEnv()
		if err != nil {
			defaultErr = err
			return
		}
		defaultLib, defaultErr = Open(cfg)
	})
	return defaultErr
}

// Default returns the process-wide library, initializing it if needed.
// Callers must not Close it.
func Default() (*Library, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultLib, nil
}

func mustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(fmt.Errorf("rlib: initialization failed: %w", err))
	}
	return lib
}

// Add returns a + b using the default library. It panics if the default
// library cannot be initialized.
func Add(a, b int32) int32 { return mustDefault().Add(a, b) }

// Multiply returns a * b using the default library.
func Multiply(a, b int32) int32 { return mustDefault().Multiply(a, b) }

// Exponent returns base raised to exp using the default library.
func Exponent(base, exp int32) (int32, error) { return mustDefault().Exponent(base, exp) }

// Divide returns a / b using the default library.
func Divide(a, b int32) (int32, error) { return mustDefault().Divide(a, b) }
