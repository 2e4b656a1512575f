package parse

import "log/slog"

// Run applies p to input and returns its single value. It succeeds only if
// p consumed the entire input and produced exactly one value.
func Run[I Input[I], V any](p Parser[I, V], input I) (V, bool) {
	var zero V

	r, ok := p(input)
	if !ok || r.Backlog.Len() != 0 || len(r.Values) != 1 {
		return zero, false
	}

	return r.Values[0], true
}

// Explain is [Run] with a reason attached to every rejection. The returned
// error is one of [ErrNoMatch], [ErrTrailingInput] or [ErrValueCount],
// annotated with the offsets involved.
func Explain[I Input[I], V any](p Parser[I, V], input I) (V, error) {
	var zero V

	r, ok := p(input)

	switch {
	case !ok:
		return zero, ErrNoMatch.With(
			slog.Int("offset", 0),
			slog.Int("length", input.Len()),
		)

	case r.Backlog.Len() != 0:
		return zero, ErrTrailingInput.With(
			slog.Int("offset", Consumed(input, r.Backlog)),
			slog.Int("remaining", r.Backlog.Len()),
		)

	case len(r.Values) != 1:
		return zero, ErrValueCount.With(
			slog.Int("offset", input.Len()),
			slog.Int("count", len(r.Values)),
		)
	}

	return r.Values[0], nil
}
