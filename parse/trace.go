package parse

import (
	"log/slog"

	"github.com/ardnew/pcomb/log"
)

// Trace wraps p so that every invocation is logged at trace level with the
// given name. The result of p is returned unchanged.
func Trace[I Input[I], V any](
	name string,
	logger log.Logger,
	p Parser[I, V],
) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		r, ok := p(input)
		if !logger.LevelEnabled(log.LevelTrace) {
			return r, ok
		}

		attrs := []slog.Attr{
			slog.String("parser", name),
			slog.Int("length", input.Len()),
			slog.Bool("matched", ok),
		}

		if ok {
			attrs = append(attrs,
				slog.Int("consumed", Consumed(input, r.Backlog)),
				slog.Int("values", len(r.Values)),
			)
		}

		logger.Trace("parse", attrs...)

		return r, ok
	}
}
