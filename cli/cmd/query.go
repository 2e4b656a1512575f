package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/query"
)

// Query evaluates an expr-lang expression against JSON documents.
type Query struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"0"                     help:"Indent width for formatted output (0 for compact JSON)." short:"i"`

	Expr    string   `arg:"" help:"Expression to evaluate; the document is bound to \"doc\"." name:"expr"`
	Sources []string `arg:"" help:"Source input file(s) or '-' for stdin."                     name:"source" optional:""`
}

// Run executes the query command, printing one result per source.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := resolveSources(ctx, q.Sources)
	if err != nil {
		return err
	}

	streams := streamsFrom(ctx)

	for i, src := range srcs {
		doc, err := load(ctx, src)
		if err != nil {
			return err
		}

		result, err := query.Eval(ctx, q.Expr, query.NewEnv(doc))
		if err != nil {
			if alt := query.Suggestions(err); len(alt) > 0 {
				fmt.Fprintf(streams.Err, "did you mean: %s?\n", strings.Join(alt, ", "))
			}

			return err
		}

		if i > 0 && q.Format == formatYAML {
			if _, err := io.WriteString(streams.Out, "---\n"); err != nil {
				return ErrWriteOutput.Wrap(err)
			}
		}

		if err := render(ctx, streams.Out, result, q.Format, q.Indent); err != nil {
			return err
		}

		log.DebugContext(ctx, "evaluated query",
			slog.String("source", src.name),
			slog.String("query", q.Expr),
		)
	}

	return nil
}
