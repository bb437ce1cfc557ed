// Package logging provides a minimal logging facade for the rlib bindings.
//
// The Logger interface wraps a subset of log/slog so applications can plug in
// their own implementation:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// Programs that already use zerolog can pass their logger through
// NewZerolog, and Nop discards everything:
//
//	logger = logging.NewZerolog(zerolog.New(os.Stderr))
//	logger = logging.Nop()
package logging
