package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a structured logger with an immutable configuration. The zero
// value discards everything.
type Logger struct {
	*slog.Logger
	config
}

// Make returns a [Logger] writing to w. Without options it uses
// [DefaultFormat], [DefaultLevel] and [DefaultTimeLayout] with caller info
// disabled.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// Wrap returns a new [Logger] using the configuration of l with opts applied.
// Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := l.config
	if cfg.output == nil {
		cfg = makeConfig(nil)
	}

	cfg = cfg.apply(opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// With returns a new [Logger] that adds attrs to every record.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil || len(attrs) == 0 {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		config: l.config,
	}
}

// Level returns the minimum level of records that are written.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the record encoding.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

// LevelEnabled reports whether records at level would be written. It is
// false for every level of a zero [Logger].
func (l Logger) LevelEnabled(level Level) bool {
	if l.Logger == nil {
		return false
	}

	return l.Enabled(context.Background(), slog.Level(level))
}

// TraceContext logs at [LevelTrace].
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 0, LevelTrace, msg, attrs...)
}

// Trace logs at [LevelTrace].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 0, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug].
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 0, LevelDebug, msg, attrs...)
}

// Debug logs at [LevelDebug].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 0, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo].
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 0, LevelInfo, msg, attrs...)
}

// Info logs at [LevelInfo].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 0, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn].
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 0, LevelWarn, msg, attrs...)
}

// Warn logs at [LevelWarn].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 0, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError].
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 0, LevelError, msg, attrs...)
}

// Error logs at [LevelError].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 0, LevelError, msg, attrs...)
}

// log writes a record whose source is the caller skip frames above the
// exported method that called log.
func (l Logger) log(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr

	if l.caller {
		var pcs [1]uintptr
		// runtime.Callers, log, exported method
		runtime.Callers(3+skip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
