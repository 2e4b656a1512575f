// Package log provides a concurrency-safe structured logger built on
// [log/slog].
//
// Loggers are immutable values configured with functional options at
// creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("parsed", slog.String("file", name), slog.Int("bytes", n))
//
// [Logger.Wrap] derives a logger with some options overridden and
// [Logger.With] derives one that adds attributes to every record.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Trace sits below slog's debug level and is
// used for per-parser diagnostics.
//
// # Formats
//
// [FormatJSON] and [FormatText] select slog's JSON and text handlers. With
// [WithPretty], text output is rendered by a colorized handler styled with
// lipgloss. Colors are dropped automatically when the output is not a
// terminal.
//
// # Default logger
//
// Package-level functions such as [Info] and [ErrorContext] log through a
// process-wide default logger, which [Config] reconfigures.
package log
