package rlib

// Version is populated at build time via
// -ldflags "-X github.com/rlib-dev/rlib-go/pkg/rlib.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time. In
// development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
