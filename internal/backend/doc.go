// Package backend hosts the dynamic binding to the native rlib library. It
// locates a shared library among an ordered list of candidate paths, declares
// each entry point's C signature to libffi, and exposes typed wrappers.
//
// The libffi-backed implementation is compiled only with the rlib_ffi build
// tag on linux, darwin and freebsd for amd64 and arm64. Every other build gets
// a stub whose Open reports ErrNotBuilt, so the rest of the repository builds
// without libffi installed.
package backend
