// Package query evaluates expr-lang expressions against parsed JSON
// documents.
//
// The document is bound to the variable doc in its native form (see
// [json.ToNative]), so members are reached with the usual expr syntax:
//
//	doc.servers[0].host
//	filter(doc.items, .price > 10) | map(.name)
//	keys(doc)
package query

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/pkg"
)

// DocName is the variable holding the document.
const DocName = "doc"

var (
	ErrCompile  = pkg.NewError("compile query")
	ErrEvaluate = pkg.NewError("evaluate query")
)

// Env is the set of variables visible to an expression.
type Env map[string]any

// NewEnv returns an environment binding doc to [DocName].
func NewEnv(doc any) Env {
	return Env{DocName: json.ToNative(doc)}
}

// Eval compiles and runs code against env.
//
// Compile errors naming an unknown identifier carry a "suggest" attribute
// listing close matches among the names of env and the expr builtins.
func Eval(ctx context.Context, code string, env Env) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program, err := expr.Compile(code, expr.Env(map[string]any(env)))
	if err != nil {
		qerr := ErrCompile.Wrap(err).With(slog.String("query", code))
		if alt := suggestFor(err, env); len(alt) > 0 {
			qerr = qerr.With(slog.String("suggest", strings.Join(alt, ", ")))
		}

		return nil, qerr
	}

	out, err := expr.Run(program, map[string]any(env))
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).With(slog.String("query", code))
	}

	return out, nil
}

// Builtins returns the names of the expr builtin functions, sorted.
var Builtins = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(builtin.Index))
})

// IsBuiltin reports whether name is an expr builtin function.
func IsBuiltin(name string) bool {
	_, ok := builtin.Index[name]

	return ok
}

// Names returns every top-level name an expression may use in env.
func Names(env Env) []string {
	return append(slices.Sorted(maps.Keys(env)), Builtins()...)
}

// Suggest returns the names of env and the builtins that fuzzily match
// word, best match first.
func Suggest(word string, env Env) []string {
	if word == "" {
		return nil
	}

	matches := fuzzy.Find(word, Names(env))

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Str != word {
			out = append(out, m.Str)
		}
	}

	return out
}

const maxSuggestions = 3

var unknownName = regexp.MustCompile(`unknown name ([\p{L}_$][\p{L}\p{N}_$]*)`)

func suggestFor(err error, env Env) []string {
	m := unknownName.FindStringSubmatch(err.Error())
	if m == nil {
		return nil
	}

	alt := Suggest(m[1], env)

	return alt[:min(len(alt), maxSuggestions)]
}

// Suggestions returns the "did you mean" names recorded in an error
// returned by [Eval].
func Suggestions(err error) []string {
	var qerr *pkg.Error
	if !errors.As(err, &qerr) {
		return nil
	}

	v, ok := qerr.Attr("suggest")
	if !ok {
		return nil
	}

	return strings.Split(v.String(), ", ")
}

// Lookup resolves a dotted member path such as "servers.0.host" in a
// native document. Numeric segments index arrays.
func Lookup(doc any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}

	cur := doc

	for seg := range strings.SplitSeq(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}

			cur = next

		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}

			cur = v[i]

		default:
			return nil, false
		}
	}

	return cur, true
}

// Members returns the sorted keys of v if it is an object.
func Members(v any) []string {
	if m, ok := v.(map[string]any); ok {
		return slices.Sorted(maps.Keys(m))
	}

	return nil
}
