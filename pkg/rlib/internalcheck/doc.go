// Package internalcheck holds repository policy tests. It has no API.
//
// The tests load the module with golang.org/x/tools/go/packages and check
// that foreign-call code stays confined to the packages that own it and that
// library packages only log through pkg/rlib/logging.
package internalcheck
