package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/pcomb/log"
)

// Parse reads JSON documents and prints them in the chosen format.
type Parse struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                     help:"Indent width for formatted output (0 for compact JSON)." short:"i"`

	Sources []string `arg:"" help:"Source input file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := resolveSources(ctx, p.Sources)
	if err != nil {
		return err
	}

	out := streamsFrom(ctx).Out

	for i, src := range srcs {
		doc, err := load(ctx, src)
		if err != nil {
			return err
		}

		if i > 0 && p.Format == formatYAML {
			if _, err := io.WriteString(out, "---\n"); err != nil {
				return ErrWriteOutput.Wrap(err)
			}
		}

		if err := render(ctx, out, doc, p.Format, p.Indent); err != nil {
			return err
		}

		log.DebugContext(ctx, "parsed source",
			slog.String("source", src.name),
			slog.String("format", p.Format),
		)
	}

	return nil
}
