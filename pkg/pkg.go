// Package pkg holds the identity of the pcomb module and the locations it
// uses on the host.
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the module, embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the configuration and cache
	// directories.
	Name = "pcomb"
	// Description is the one-line summary shown in help output.
	Description = "Parse, validate and query JSON with parser combinators"
	// EnvPath names the environment variable holding extra directories to
	// search for relative source files.
	EnvPath = "PCOMB_PATH"
)
