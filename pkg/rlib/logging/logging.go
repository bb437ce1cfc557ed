package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// Logger defines the subset of slog functionality used by the rlib bindings.
// The interface is intentionally small so applications can provide their own
// implementation for testing.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// NewZerolog adapts a zerolog.Logger. Args are read as alternating key/value
// pairs the way slog reads them; a trailing key without a value is logged
// under "!BADKEY".
func NewZerolog(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Debug(), msg, args)
}

func (l *zerologLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Info(), msg, args)
}

func (l *zerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Warn(), msg, args)
}

func (l *zerologLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Error(), msg, args)
}

func (l *zerologLogger) With(args ...any) Logger {
	zctx := l.logger.With()
	for key, val := range pairs(args) {
		zctx = zctx.Interface(key, val)
	}
	return &zerologLogger{logger: zctx.Logger()}
}

func (l *zerologLogger) emit(ctx context.Context, ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for key, val := range pairs(args) {
		ev = ev.Interface(key, val)
	}
	ev.Ctx(ctx).Msg(msg)
}

// pairs yields slog-style key/value arguments. slog.Attr values are expanded
// in place.
func pairs(args []any) func(yield func(string, any) bool) {
	return func(yield func(string, any) bool) {
		for i := 0; i < len(args); i++ {
			switch k := args[i].(type) {
			case slog.Attr:
				if !yield(k.Key, k.Value.Any()) {
					return
				}
			case string:
				if i+1 >= len(args) {
					yield("!BADKEY", k)
					return
				}
				i++
				if !yield(k, args[i]) {
					return
				}
			default:
				if !yield("!BADKEY", k) {
					return
				}
			}
		}
	}
}
