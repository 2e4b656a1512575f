package parse

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Input is the capability set an input representation must provide for the
// combinators to operate on it.
type Input[I any] interface {
	// Len returns the number of elements remaining.
	Len() int
	// HasPrefix reports whether the receiver begins with prefix.
	HasPrefix(prefix I) bool
	// Drop returns the receiver without its first n elements.
	Drop(n int) I
}

// Text is string input. Lengths and offsets are measured in bytes.
type Text string

// Len implements [Input].
func (t Text) Len() int { return len(t) }

// HasPrefix implements [Input].
func (t Text) HasPrefix(prefix Text) bool {
	return strings.HasPrefix(string(t), string(prefix))
}

// Drop implements [Input].
func (t Text) Drop(n int) Text { return t[n:] }

func (t Text) String() string { return string(t) }

// Tokens is input made of a slice of comparable tokens.
type Tokens[T comparable] []T

// Len implements [Input].
func (t Tokens[T]) Len() int { return len(t) }

// HasPrefix implements [Input].
func (t Tokens[T]) HasPrefix(prefix Tokens[T]) bool {
	return len(prefix) <= len(t) && slices.Equal(t[:len(prefix)], prefix)
}

// Drop implements [Input].
func (t Tokens[T]) Drop(n int) Tokens[T] { return t[n:] }

// Consumed returns how many elements of input were consumed to leave
// backlog. The backlog must be a suffix of input.
func Consumed[I Input[I]](input, backlog I) int {
	return input.Len() - backlog.Len()
}

// Rune returns a parser that consumes exactly one UTF-8 encoded rune
// satisfying pred. Invalid encodings never match.
func Rune(pred func(rune) bool) Parser[Text, Text] {
	return func(input Text) (Result[Text, Text], bool) {
		r, n := utf8.DecodeRuneInString(string(input))
		if n == 0 || (r == utf8.RuneError && n == 1) || !pred(r) {
			return Result[Text, Text]{}, false
		}

		return Result[Text, Text]{
			Backlog: input[n:],
			Values:  []Text{input[:n]},
		}, true
	}
}

// Token returns a parser that consumes exactly one token satisfying pred.
// The produced value is the one-element prefix holding that token.
func Token[T comparable](pred func(T) bool) Parser[Tokens[T], Tokens[T]] {
	return func(input Tokens[T]) (Result[Tokens[T], Tokens[T]], bool) {
		if len(input) == 0 || !pred(input[0]) {
			return Result[Tokens[T], Tokens[T]]{}, false
		}

		return Result[Tokens[T], Tokens[T]]{
			Backlog: input[1:],
			Values:  []Tokens[T]{input[:1:1]},
		}, true
	}
}
