// Package parse is a small parser-combinator engine.
//
// A [Parser] is a pure function from an input to an optional [Result]. The
// result holds the unconsumed suffix of the input (the backlog) and the
// values produced so far. Failure is the absence of a result: a parser
// returns ok == false and nothing else.
//
// # Inputs
//
// The engine is generic over any input type that implements [Input]: a
// length, a prefix test and a drop-first-n operation. Two adapters are
// provided:
//
//   - [Text] parses characters of a string (offsets are in bytes).
//   - [Tokens] parses a slice of comparable tokens.
//
// The same combinators serve both:
//
//	greeting := parse.SequenceOf(
//		parse.Literal[parse.Text]("hello"),
//		parse.Discard(parse.Literal[parse.Text](" ")),
//		parse.Literal[parse.Text]("world"),
//	)
//
//	words := parse.SequenceOf(
//		parse.Literal(parse.Tokens[string]{"hello"}),
//		parse.Literal(parse.Tokens[string]{"world"}),
//	)
//
// # Building parsers
//
// Primitives: [Literal], [Fail], [Succeed], and the adapter helpers [Rune]
// and [Token].
//
// Combinators: [Discard], [Optional], [Either], [OneOf], [PairOf],
// [SequenceOf], [OneOrMore], [ZeroOrMore], [AtMost] and [Lazy] for
// recursive grammars.
//
// Transforms: [Map] rewrites the whole value slice, [Bind] inspects the
// whole result and may reject it.
//
// # Running
//
// [Run] accepts a parse only if it consumed the entire input and produced
// exactly one value. [Explain] applies the same rule but reports why a
// parse was rejected as an [*Error].
//
// # Alternation
//
// [Either] and [OneOf] always retry the next alternative from the original
// start position. There is no backtracking into a failed alternative.
//
// # Stack usage
//
// [OneOf], [SequenceOf] and the repetition combinators are loops. Their
// stack depth does not grow with the number of alternatives, the number of
// sequenced parsers, or the number of repetitions. A repetition whose inner
// parser succeeds without consuming input stops after that iteration.
package parse
