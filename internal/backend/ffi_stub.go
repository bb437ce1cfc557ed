//go:build !(rlib_ffi && (linux || darwin || freebsd) && (amd64 || arm64))

package backend

// Built reports whether the libffi binding is compiled into this binary.
const Built = false

// Library mirrors the libffi-backed type so callers compile unchanged. It is
// never returned by the stub Open.
type Library struct{}

// Open reports ErrNotBuilt without touching the filesystem.
func Open([]string) (*Library, error) {
	return nil, ErrNotBuilt
}

func (l *Library) Path() string { return "" }

func (l *Library) Add(int32, int32) int32 { return 0 }

func (l *Library) Multiply(int32, int32) int32 { return 0 }

func (l *Library) Exponent(int32, int32) int32 { return 0 }

func (l *Library) Divide(int32, int32) (int32, int32) { return 0, 0 }

func (l *Library) ErrorMessage(int32) string { return "" }
