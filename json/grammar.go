package json

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/ardnew/pcomb/parse"
)

type (
	text   = parse.Text
	parser = parse.Parser[text, any]
)

// grammar builds the JSON parsers. With a non-nil watermark every terminal
// parser reports its progress, which locates the point where a rejected
// document stopped matching.
type grammar struct {
	w *watermark
}

// watermark holds the shortest backlog left by any terminal match.
type watermark struct {
	rest int
}

func mark[V any](w *watermark, p parse.Parser[text, V]) parse.Parser[text, V] {
	if w == nil {
		return p
	}

	return func(input text) (parse.Result[text, V], bool) {
		r, ok := p(input)
		if ok && r.Backlog.Len() < w.rest {
			w.rest = r.Backlog.Len()
		}

		return r, ok
	}
}

func (g grammar) lit(s string) parse.Parser[text, text] {
	return mark(g.w, parse.Literal(text(s)))
}

func (g grammar) anyOf(fragments ...string) parse.Parser[text, text] {
	ps := make([]parse.Parser[text, text], len(fragments))
	for i, f := range fragments {
		ps[i] = g.lit(f)
	}

	return parse.OneOf(ps...)
}

func (g grammar) char(pred func(rune) bool) parse.Parser[text, text] {
	return mark(g.w, parse.Rune(pred))
}

// skip matches p and produces no values.
func skip[V any](p parse.Parser[text, V]) parser {
	return parse.Map(func([]V) []any { return nil }, p)
}

// valueOf matches p and produces the single value f derives from its text.
func valueOf(f func([]text) any, p parse.Parser[text, text]) parser {
	return parse.Map(func(ts []text) []any { return []any{f(ts)} }, p)
}

func concat(ts []text) string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(string(t))
	}

	return sb.String()
}

// document returns a parser for a complete JSON text: one value with
// optional surrounding whitespace.
func (g grammar) document() parser {
	ws := skip(parse.ZeroOrMore(g.anyOf(" ", "\t", "\n", "\r")))
	str := g.str()

	var value parser

	element := parse.SequenceOf(ws, parse.Lazy(func() parser { return value }), ws)

	value = parse.OneOf(
		g.object(ws, str, element),
		g.array(ws, element),
		str,
		g.number(),
		g.keyword("true", true),
		g.keyword("false", false),
		g.keyword("null", nil),
	)

	return element
}

func (g grammar) keyword(word string, v any) parser {
	return valueOf(func([]text) any { return v }, g.lit(word))
}

func (g grammar) object(ws, key, element parser) parser {
	member := parse.SequenceOf(ws, key, ws, skip(g.lit(":")), element)
	members := parse.PairOf(member,
		parse.ZeroOrMore(parse.PairOf(skip(g.lit(",")), member)))

	body := parse.SequenceOf(
		skip(g.lit("{")),
		parse.Either(members, ws),
		skip(g.lit("}")),
	)

	return parse.Map(func(vs []any) []any {
		obj := &Object{Members: make([]Member, 0, len(vs)/2)}
		for i := 0; i+1 < len(vs); i += 2 {
			k, _ := vs[i].(string)
			obj.Members = append(obj.Members, Member{Key: k, Value: vs[i+1]})
		}

		return []any{obj}
	}, body)
}

func (g grammar) array(ws, element parser) parser {
	items := parse.PairOf(element,
		parse.ZeroOrMore(parse.PairOf(skip(g.lit(",")), element)))

	body := parse.SequenceOf(
		skip(g.lit("[")),
		parse.Either(items, ws),
		skip(g.lit("]")),
	)

	return parse.Map(func(vs []any) []any {
		arr := make([]any, len(vs))
		copy(arr, vs)

		return []any{arr}
	}, body)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isHex(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func (g grammar) number() parser {
	digit := g.char(isDigit)

	integer := parse.Either(
		g.lit("0"),
		parse.PairOf(
			g.char(func(r rune) bool { return '1' <= r && r <= '9' }),
			parse.ZeroOrMore(digit)),
	)
	fraction := parse.PairOf(g.lit("."), parse.OneOrMore(digit))
	exponent := parse.SequenceOf(
		g.anyOf("e", "E"),
		parse.Optional(g.anyOf("+", "-")),
		parse.OneOrMore(digit),
	)

	return valueOf(func(ts []text) any { return Number(concat(ts)) },
		parse.SequenceOf(
			parse.Optional(g.lit("-")),
			integer,
			parse.Optional(fraction),
			parse.Optional(exponent),
		))
}

var escapes = map[text]text{
	`"`: `"`, `\`: `\`, "/": "/",
	"b": "\b", "f": "\f", "n": "\n", "r": "\r", "t": "\t",
}

func (g grammar) str() parser {
	plain := parse.Map(func(ts []text) []text { return []text{text(concat(ts))} },
		parse.OneOrMore(g.char(func(r rune) bool {
			return r >= 0x20 && r != '"' && r != '\\'
		})))

	escape := parse.Map(func(ts []text) []text { return []text{escapes[ts[1]]} },
		parse.PairOf(g.lit(`\`), g.anyOf(`"`, `\`, "/", "b", "f", "n", "r", "t")))

	quote := parse.Discard(g.lit(`"`))

	return valueOf(func(ts []text) any { return concat(ts) },
		parse.SequenceOf(
			quote,
			parse.ZeroOrMore(parse.OneOf(plain, escape, g.codepoint())),
			quote,
		))
}

// codepoint matches a \uXXXX escape, or a UTF-16 surrogate pair of them.
// Unpaired surrogates are rejected.
func (g grammar) codepoint() parse.Parser[text, text] {
	hex := g.char(isHex)

	unit := parse.Map(func(ts []text) []rune {
		n, _ := strconv.ParseUint(concat(ts[1:]), 16, 16)

		return []rune{rune(n)}
	}, parse.SequenceOf(g.lit(`\u`), hex, hex, hex, hex))

	high := parse.Bind(within(0xD800, 0xDBFF, true), unit)
	low := parse.Bind(within(0xDC00, 0xDFFF, true), unit)
	single := parse.Bind(within(0xD800, 0xDFFF, false), unit)

	return parse.Either(
		parse.Map(func(rs []rune) []text {
			return []text{text(string(utf16.DecodeRune(rs[0], rs[1])))}
		}, parse.PairOf(high, low)),
		parse.Map(func(rs []rune) []text {
			return []text{text(string(rs[0]))}
		}, single),
	)
}

// within accepts a code unit iff its membership in [lo, hi] equals inside.
func within(lo, hi rune, inside bool) func(parse.Result[text, rune]) (parse.Result[text, rune], bool) {
	return func(r parse.Result[text, rune]) (parse.Result[text, rune], bool) {
		c := r.Values[0]

		return r, (lo <= c && c <= hi) == inside
	}
}
