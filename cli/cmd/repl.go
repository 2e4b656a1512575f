package cmd

import (
	"context"

	"github.com/ardnew/pcomb/cli/cmd/repl"
	"github.com/ardnew/pcomb/log"
)

// Repl explores a JSON document interactively.
type Repl struct {
	Source string `arg:"" help:"JSON document to explore; omit to start from null." name:"source" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if r.Source == stdinSource {
		return ErrStdinRepl
	}

	var (
		doc  any
		path string
	)

	if r.Source != "" {
		srcs, err := resolveSources(ctx, []string{r.Source})
		if err != nil {
			return err
		}

		if doc, err = load(ctx, srcs[0]); err != nil {
			return err
		}

		path = srcs[0].path
	}

	return repl.Run(ctx, doc, path, kongVar(ctx, CacheIdentifier), log.Default())
}
