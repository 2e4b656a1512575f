package json

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/parse"
	"github.com/ardnew/pcomb/pkg"
)

var (
	ErrReadInput = pkg.NewError("read input")
	ErrSyntax    = pkg.NewError("invalid JSON")
	ErrFormat    = pkg.NewError("format document")
	ErrNesting   = pkg.NewError("nesting too deep")
)

// MaxDepth is the default limit on nested arrays and objects.
const MaxDepth = 10000

var document = sync.OnceValue(grammar{}.document)

type options struct {
	logger   log.Logger
	maxDepth int
}

// Option configures [Parse] and [ParseReader].
type Option func(options) options

// WithLogger logs the outcome of each parse to logger. At trace level the
// document parser is traced as well.
func WithLogger(logger log.Logger) Option {
	return func(o options) options {
		o.logger = logger

		return o
	}
}

// WithMaxDepth limits the nesting of arrays and objects to depth levels.
// A depth of zero or less selects [MaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o options) options {
		o.maxDepth = depth

		return o
	}
}

// Parse parses src as a single JSON document.
//
// Errors are [ErrSyntax], wrapping the [parse.Explain] reason or
// [ErrNesting], and carrying "offset", "line" and "column" attributes (see
// [Position]).
func Parse(ctx context.Context, src string, opts ...Option) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := options{maxDepth: MaxDepth}
	for _, opt := range opts {
		o = opt(o)
	}

	if o.maxDepth <= 0 {
		o.maxDepth = MaxDepth
	}

	// The grammar recurses once per level, so deeper input is rejected
	// before it runs.
	if offset, ok := tooDeep(src, o.maxDepth); ok {
		err := located(ErrSyntax.Wrap(
			ErrNesting.With(slog.Int("limit", o.maxDepth))), src, offset)
		o.logger.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	p := document()
	if o.logger.LevelEnabled(log.LevelTrace) {
		p = parse.Trace("document", o.logger, p)
	}

	v, err := parse.Explain(p, text(src))
	if err != nil {
		err = syntaxError(src, err)
		o.logger.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	o.logger.DebugContext(ctx, "parsed", slog.Int("bytes", len(src)))

	return v, nil
}

// ParseReader reads r to EOF and parses the content with [Parse].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data), opts...)
}

// Position returns the 1-based line and column recorded in an error
// returned by [Parse].
func Position(err error) (line, column int, ok bool) {
	var perr *pkg.Error
	if !errors.As(err, &perr) {
		return 0, 0, false
	}

	l, lok := perr.Attr("line")
	c, cok := perr.Attr("column")

	if !lok || !cok || l.Kind() != slog.KindInt64 || c.Kind() != slog.KindInt64 {
		return 0, 0, false
	}

	return int(l.Int64()), int(c.Int64()), true
}

func syntaxError(src string, err error) error {
	offset := 0

	var perr *parse.Error
	if errors.As(err, &perr) {
		offset, _ = perr.Offset()
	}

	if errors.Is(err, parse.ErrNoMatch) {
		offset = farthest(src)
	}

	return located(ErrSyntax.Wrap(err), src, offset)
}

func located(err *pkg.Error, src string, offset int) error {
	line, column := position(src, offset)

	return err.With(
		slog.Int("offset", offset),
		slog.Int("line", line),
		slog.Int("column", column),
	)
}

// tooDeep reports the offset of the first bracket that opens level limit+1.
// Brackets inside strings are not counted.
func tooDeep(src string, limit int) (int, bool) {
	depth, quoted, escaped := 0, false, false

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch {
		case escaped:
			escaped = false

		case quoted:
			switch c {
			case '\\':
				escaped = true
			case '"':
				quoted = false
			}

		case c == '"':
			quoted = true

		case c == '[' || c == '{':
			if depth++; depth > limit {
				return i, true
			}

		case c == ']' || c == '}':
			depth = max(depth-1, 0)
		}
	}

	return 0, false
}

// farthest reparses src with progress tracking and returns the offset of
// the first byte no terminal could match.
func farthest(src string) int {
	w := &watermark{rest: len(src)}
	grammar{w: w}.document()(text(src))

	return len(src) - w.rest
}

func position(src string, offset int) (line, column int) {
	before := src[:min(max(offset, 0), len(src))]
	line = 1 + strings.Count(before, "\n")
	column = 1 + utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:])

	return line, column
}
