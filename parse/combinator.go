package parse

import "slices"

// Discard runs p and drops its values. The backlog is kept and failure
// propagates.
func Discard[I Input[I], V any](p Parser[I, V]) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		r, ok := p(input)
		if !ok {
			return Result[I, V]{}, false
		}

		return Result[I, V]{Backlog: r.Backlog}, true
	}
}

// Optional runs p. If p fails, Optional succeeds with the input untouched
// and no values. It never fails.
func Optional[I Input[I], V any](p Parser[I, V]) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		r, ok := p(input)
		if !ok {
			return Result[I, V]{Backlog: input}, true
		}

		return r, true
	}
}

// Either returns the result of p1 if it succeeds, otherwise the result of
// p2 applied to the same input.
func Either[I Input[I], V any](p1, p2 Parser[I, V]) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		if r, ok := p1(input); ok {
			return r, true
		}

		return p2(input)
	}
}

// OneOf tries each parser in order against the same input and returns the
// first success. With no parsers, or when all fail, it fails.
func OneOf[I Input[I], V any](ps ...Parser[I, V]) Parser[I, V] {
	ps = slices.Clone(ps)

	return func(input I) (Result[I, V], bool) {
		for _, p := range ps {
			if r, ok := p(input); ok {
				return r, true
			}
		}

		return Result[I, V]{}, false
	}
}

// PairOf runs p1, then p2 on the backlog of p1. Both must succeed; the
// values of p1 are followed by the values of p2.
func PairOf[I Input[I], V any](p1, p2 Parser[I, V]) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		a, ok := p1(input)
		if !ok {
			return Result[I, V]{}, false
		}

		b, ok := p2(a.Backlog)
		if !ok {
			return Result[I, V]{}, false
		}

		values := make([]V, 0, len(a.Values)+len(b.Values))
		values = append(values, a.Values...)
		values = append(values, b.Values...)

		return Result[I, V]{Backlog: b.Backlog, Values: values}, true
	}
}

// SequenceOf runs each parser in order, threading the backlog from one to
// the next, and concatenates their values. Any failure fails the whole
// sequence. With no parsers it succeeds without consuming input.
func SequenceOf[I Input[I], V any](ps ...Parser[I, V]) Parser[I, V] {
	ps = slices.Clone(ps)

	return func(input I) (Result[I, V], bool) {
		acc := Result[I, V]{Backlog: input}

		for _, p := range ps {
			r, ok := p(acc.Backlog)
			if !ok {
				return Result[I, V]{}, false
			}

			acc.Backlog = r.Backlog
			acc.Values = append(acc.Values, r.Values...)
		}

		return acc, true
	}
}

// OneOrMore applies p greedily until it fails, collecting all values. It
// fails only if the first application fails.
//
// An application of p that succeeds without consuming input contributes its
// values and then ends the repetition.
func OneOrMore[I Input[I], V any](p Parser[I, V]) Parser[I, V] {
	return func(input I) (Result[I, V], bool) {
		r, ok := p(input)
		if !ok {
			return Result[I, V]{}, false
		}

		acc := Result[I, V]{Backlog: r.Backlog}
		acc.Values = append(acc.Values, r.Values...)

		for r.Backlog.Len() < input.Len() {
			input = acc.Backlog

			r, ok = p(input)
			if !ok {
				break
			}

			acc.Backlog = r.Backlog
			acc.Values = append(acc.Values, r.Values...)
		}

		return acc, true
	}
}

// ZeroOrMore applies p greedily as many times as possible, possibly zero.
// It never fails.
func ZeroOrMore[I Input[I], V any](p Parser[I, V]) Parser[I, V] {
	return Optional(OneOrMore(p))
}

// AtMost runs p and rejects its result if it produced more than n values.
func AtMost[I Input[I], V any](n int, p Parser[I, V]) Parser[I, V] {
	return Bind(func(r Result[I, V]) (Result[I, V], bool) {
		return r, len(r.Values) <= n
	}, p)
}
