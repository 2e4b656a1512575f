package repl

import "github.com/ardnew/pcomb/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds  = pkg.NewError("index out of range")
	ErrEditDeclined = pkg.NewError("decline edit")
	ErrNoSource     = pkg.NewError("no source file to reload")
	ErrNoMember     = pkg.NewError("no such member")
)
