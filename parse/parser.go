package parse

import (
	"slices"
	"sync"
)

// Result is the outcome of a successful parse.
type Result[I, V any] struct {
	// Backlog is the unconsumed suffix of the input.
	Backlog I
	// Values holds the values produced, in the order they were parsed.
	// It may be empty even on success.
	Values []V
}

// Parser maps an input to a [Result]. The boolean reports success; when it
// is false the result is the zero value and must be ignored.
//
// Parsers hold no mutable state and may be invoked any number of times,
// including concurrently.
type Parser[I Input[I], V any] func(input I) (Result[I, V], bool)

// Literal returns a parser that succeeds iff the input begins with match.
// It consumes match and produces it as the only value.
//
// A zero-length match always succeeds without consuming anything.
func Literal[I Input[I]](match I) Parser[I, I] {
	n := match.Len()

	return func(input I) (Result[I, I], bool) {
		if !input.HasPrefix(match) {
			return Result[I, I]{}, false
		}

		return Result[I, I]{
			Backlog: input.Drop(n),
			Values:  []I{match},
		}, true
	}
}

// Fail returns a parser that never succeeds.
func Fail[I Input[I], V any]() Parser[I, V] {
	return func(I) (Result[I, V], bool) {
		return Result[I, V]{}, false
	}
}

// Succeed returns a parser that always succeeds without consuming input and
// produces the given values.
func Succeed[I Input[I], V any](values ...V) Parser[I, V] {
	values = slices.Clone(values)

	return func(input I) (Result[I, V], bool) {
		return Result[I, V]{
			Backlog: input,
			Values:  slices.Clone(values),
		}, true
	}
}

// AnyOf returns a parser matching the first of the given fragments that
// prefixes the input.
func AnyOf[I Input[I]](fragments ...I) Parser[I, I] {
	ps := make([]Parser[I, I], len(fragments))
	for i, f := range fragments {
		ps[i] = Literal(f)
	}

	return OneOf(ps...)
}

// Lazy defers construction of a parser until its first invocation. It lets
// a grammar refer to a parser before that parser is defined.
func Lazy[I Input[I], V any](build func() Parser[I, V]) Parser[I, V] {
	p := sync.OnceValue(build)

	return func(input I) (Result[I, V], bool) {
		return p()(input)
	}
}
