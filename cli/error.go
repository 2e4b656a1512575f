package cli

import "github.com/ardnew/pcomb/pkg"

var (
	ErrCreateDir  = pkg.NewError("create runtime directory")
	ErrLoadConfig = pkg.NewError("load configuration")
)
