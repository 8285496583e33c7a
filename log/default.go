package log

import (
	"context"
	"log/slog"
	"os"
)

// defaultLog is the package-level default Logger, configurable via Config
// before a caller has constructed its own Logger with Make — used by the cli
// package to apply early logger side effects while Kong is still parsing
// flags.
var defaultLog = Make(os.Stderr)

// Config updates the package-level default Logger with the given options.
func Config(opts ...Option) { defaultLog = defaultLog.Wrap(opts...) }

// Default returns the package-level default Logger.
func Default() Logger { return defaultLog }

func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.TraceContext(ctx, msg, attrs...)
}

func Trace(msg string, attrs ...slog.Attr) { defaultLog.Trace(msg, attrs...) }

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.DebugContext(ctx, msg, attrs...)
}

func Debug(msg string, attrs ...slog.Attr) { defaultLog.Debug(msg, attrs...) }

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.InfoContext(ctx, msg, attrs...)
}

func Info(msg string, attrs ...slog.Attr) { defaultLog.Info(msg, attrs...) }

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.WarnContext(ctx, msg, attrs...)
}

func Warn(msg string, attrs ...slog.Attr) { defaultLog.Warn(msg, attrs...) }

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.ErrorContext(ctx, msg, attrs...)
}

func Error(msg string, attrs ...slog.Attr) { defaultLog.Error(msg, attrs...) }
