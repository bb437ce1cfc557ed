//go:build !(rlib_ffi && (linux || darwin || freebsd) && (amd64 || arm64))

package rlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlib-dev/rlib-go/pkg/rlib"
)

func TestOpenNativeNotBuilt(t *testing.T) {
	lib, err := rlib.Open(rlib.Config{Backend: rlib.BackendNative})
	require.ErrorIs(t, err, rlib.ErrNotBuilt)
	assert.Nil(t, lib)
}
