// Package cli contains the command line interface for pcomb.
//
// # Usage
//
//	pcomb [flags] <command> [args]
//
// Commands:
//   - parse [source...]: print documents as JSON (--format=json) or YAML
//     (--format=yaml), indented by --indent spaces
//   - check [source...]: report "source: ok" or "source:line:column: error"
//     for each document; fails if any document is invalid
//   - query <expr> [source...]: evaluate an expr-lang expression with the
//     document bound to doc, e.g. `filter(doc.items, .price > 10)`
//   - repl [source]: explore a document interactively
//   - init: write the current flags to the configuration file
//
// Sources are file names or "-" for stdin; no sources reads stdin. Relative
// names missing from the working directory are looked up in the --path
// directories and then in the PCOMB_PATH list.
//
// # Configuration
//
// Flag defaults are read from config.yaml and config.json in the user
// configuration directory (e.g. ~/.config/pcomb). Keys are flag names, with
// hyphens optionally spelled as underscores:
//
//	log-level: debug
//	log_format: text
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, ms, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// Trace level logs every attempt of the JSON document parser.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o pcomb .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/pcomb/pprof)
package cli
