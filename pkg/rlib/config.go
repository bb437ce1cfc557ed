package rlib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rlib-dev/rlib-go/pkg/rlib/logging"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvBackend     = "RLIB_BACKEND"
	EnvLibraryPath = "RLIB_LIBRARY_PATH"
)

// Backend selects the engine behind a Library.
type Backend int

const (
	// BackendBuiltin runs the arithmetic in-process. No library is loaded.
	BackendBuiltin Backend = iota

	// BackendNative loads the shared rlib library through libffi.
	BackendNative
)

func (b Backend) String() string {
	switch b {
	case BackendBuiltin:
		return "builtin"
	case BackendNative:
		return "native"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend accepts "builtin" (or empty) and "native", case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "builtin":
		return BackendBuiltin, nil
	case "native":
		return BackendNative, nil
	default:
		return 0, fmt.Errorf("rlib: unknown backend %q", s)
	}
}

// Config expresses the knobs needed to open a Library.
type Config struct {
	// Backend picks the engine. The zero value is BackendBuiltin.
	Backend Backend

	// SearchPaths lists the directories searched, in order, for the native
	// library. Nil means DefaultSearchPaths. Ignored by BackendBuiltin.
	SearchPaths []string

	// Logger receives debug records about loading and translated errors.
	// Nil discards them.
	Logger logging.Logger

	// Observer is told about every operation. Nil disables observation.
	Observer Observer
}

// DefaultSearchPaths returns the directories searched when Config.SearchPaths
// is nil: the executable's directory, a lib directory beside it, and the
// cargo release directory relative to the working directory.
func DefaultSearchPaths() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir, filepath.Join(dir, "..", "lib"))
	}
	return append(dirs, filepath.Join("target", "release"))
}

// ConfigFromEnv builds a Config from RLIB_BACKEND and RLIB_LIBRARY_PATH.
// Directories in RLIB_LIBRARY_PATH come before the defaults.
func ConfigFromEnv() (Config, error) {
	b, err := ParseBackend(os.Getenv(EnvBackend))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Backend: b}
	if extra := os.Getenv(EnvLibraryPath); extra != "" {
		cfg.SearchPaths = append(filepath.SplitList(extra), DefaultSearchPaths()...)
	}
	return cfg, nil
}

func (c Config) searchPaths() []string {
	if c.SearchPaths == nil {
		return DefaultSearchPaths()
	}
	return c.SearchPaths
}
