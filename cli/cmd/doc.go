// Package cmd implements the pcomb subcommands.
//
// Commands read JSON documents from files or stdin, resolving relative file
// names through the search path installed with [WithSearchPath], and write
// to the streams installed with [WithStreams].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
