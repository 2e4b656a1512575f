package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/pcomb/json"
)

// Check validates JSON documents.
type Check struct {
	Quiet bool `help:"Report failures only." short:"q"`

	Sources []string `arg:"" help:"Source input file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the check command. Each source is reported as
// "name: ok" or "name:line:column: error"; any failure fails the command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := resolveSources(ctx, c.Sources)
	if err != nil {
		return err
	}

	out := streamsFrom(ctx).Out
	failed := 0

	for _, src := range srcs {
		_, err := load(ctx, src)

		switch {
		case err == nil:
			if !c.Quiet {
				fmt.Fprintf(out, "%s: ok\n", src.name)
			}

			continue

		case errors.Is(err, context.Canceled):
			return err
		}

		failed++

		if line, col, ok := json.Position(err); ok {
			fmt.Fprintf(out, "%s:%d:%d: %v\n", src.name, line, col, err)
		} else {
			fmt.Fprintf(out, "%s: %v\n", src.name, err)
		}
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("checked", len(srcs)),
		)
	}

	return nil
}
