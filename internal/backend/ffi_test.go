//go:build rlib_ffi && (linux || darwin || freebsd) && (amd64 || arm64)

package backend_test

import (
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlib-dev/rlib-go/internal/backend"
)

// buildFixture compiles testdata/<src> into a shared library inside a fresh
// temp dir and returns that dir.
func buildFixture(t *testing.T, src string) string {
	t.Helper()

	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler available")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, backend.LibraryFilename(runtime.GOOS))
	args := []string{"-shared", "-fPIC", "-fwrapv", "-o", out, filepath.Join("testdata", src)}
	if output, err := exec.Command(cc, args...).CombinedOutput(); err != nil {
		t.Fatalf("compile %s: %v\n%s", src, err, output)
	}
	return dir
}

func openFixture(t *testing.T) *backend.Library {
	t.Helper()
	lib, err := backend.Open(backend.CandidatePaths([]string{buildFixture(t, "rlib.c")}))
	require.NoError(t, err)
	return lib
}

func TestNativeArithmetic(t *testing.T) {
	lib := openFixture(t)
	assert.True(t, backend.Built)

	assert.Equal(t, int32(5), lib.Add(2, 3))
	assert.Equal(t, int32(0), lib.Add(-1, 1))
	assert.Equal(t, int32(6), lib.Multiply(2, 3))
	assert.Equal(t, int32(-6), lib.Multiply(-2, 3))
	assert.Equal(t, int32(8), lib.Exponent(2, 3))
	assert.Equal(t, int32(25), lib.Exponent(5, 2))
	assert.Equal(t, int32(81), lib.Exponent(3, 4))
	assert.Equal(t, int32(1), lib.Exponent(0, 0))
}

func TestNativeDivide(t *testing.T) {
	lib := openFixture(t)

	tests := []struct {
		a, b, want int32
	}{
		{6, 2, 3},
		{10, 5, 2},
		{-10, 2, -5},
		{math.MinInt32, -1, math.MinInt32},
		{math.MinInt32, 1, math.MinInt32},
	}
	for _, tt := range tests {
		got, code := lib.Divide(tt.a, tt.b)
		require.Zero(t, code)
		assert.Equal(t, tt.want, got)
	}

	got, code := lib.Divide(10, 0)
	assert.Equal(t, int32(1), code)
	assert.Zero(t, got)
}

func TestNativeErrorMessage(t *testing.T) {
	lib := openFixture(t)

	assert.Equal(t, "Success", lib.ErrorMessage(0))
	assert.Equal(t, "Division by zero", lib.ErrorMessage(1))
	assert.Equal(t, "Invalid argument", lib.ErrorMessage(2))
	assert.Equal(t, "Unknown error", lib.ErrorMessage(99))
}

func TestOpenPrefersFirstCandidate(t *testing.T) {
	first := buildFixture(t, "rlib.c")
	second := buildFixture(t, "rlib.c")

	lib, err := backend.Open(backend.CandidatePaths([]string{t.TempDir(), first, second}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, backend.LibraryFilename(runtime.GOOS)), lib.Path())
}

func TestOpenMissingSymbol(t *testing.T) {
	dir := buildFixture(t, "partial.c")

	_, err := backend.Open(backend.CandidatePaths([]string{dir}))
	require.Error(t, err)

	var symErr *backend.SymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, backend.SymbolDivide, symErr.Symbol)
}

func TestOpenRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, backend.LibraryFilename(runtime.GOOS))
	require.NoError(t, os.WriteFile(path, []byte("not a shared object"), 0o644))

	_, err := backend.Open([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load library")
}
