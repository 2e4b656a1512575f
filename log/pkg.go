package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

// Config applies opts on top of the default logger's configuration and
// returns the updated default logger. Options from earlier calls persist.
func Config(opts ...Option) Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)

	return defaultLog
}

// Default returns the default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// With returns the default logger with attrs added to every record.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

func Trace(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 0, LevelTrace, msg, attrs...)
}

func Debug(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 0, LevelDebug, msg, attrs...)
}

func Info(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 0, LevelInfo, msg, attrs...)
}

func Warn(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 0, LevelWarn, msg, attrs...)
}

func Error(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 0, LevelError, msg, attrs...)
}

func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 0, LevelTrace, msg, attrs...)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 0, LevelDebug, msg, attrs...)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 0, LevelInfo, msg, attrs...)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 0, LevelWarn, msg, attrs...)
}

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 0, LevelError, msg, attrs...)
}
