package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/pcomb/log"
)

func Example() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"))
	logger.Info("parsed", slog.String("file", "config.json"), slog.Int("bytes", 12))
	// Output:
	// {"level":"INFO","msg":"parsed","file":"config.json","bytes":12}
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", slog.String("key", "value"))
	// Output:
	// {"level":"WARN","msg":"shown","key":"value"}
}

func Example_text() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.With(slog.String("user", "alice")).Info("text format")
	// Output:
	// level=INFO msg="text format" user=alice
}
