package cmd

import "github.com/ardnew/pcomb/pkg"

var (
	ErrSourceNotFound = pkg.NewError("source not found")
	ErrOpenSource     = pkg.NewError("open source")
	ErrWriteOutput    = pkg.NewError("write output")
	ErrCheckFailed    = pkg.NewError("invalid documents")
	ErrStdinRepl      = pkg.NewError("repl cannot read its document from stdin")
	ErrYAMLMarshal    = pkg.NewError("marshal YAML")
	ErrWriteConfig    = pkg.NewError("write configuration file")
	ErrFileExists     = pkg.NewError("file exists (use --force to overwrite)")
)
