package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/pkg"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable name, or "" when ctx carries no kong
// context or the variable is undefined.
func kongVar(ctx context.Context, name string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[name]
}

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type (
	streamsKey    struct{}
	searchPathKey struct{}
)

// WithStreams returns a new context.Context whose commands use s in place of
// the process's standard streams. Nil members keep the process stream.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

func streamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// WithSearchPath returns a new context.Context in which relative source
// paths not found in the working directory are looked up in dirs, in order.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

const (
	// stdinSource is the special source indicator for reading from stdin.
	stdinSource = "-"
	// stdinName names stdin in diagnostics.
	stdinName = "<stdin>"
)

// source is a located input document. An empty path denotes stdin.
type source struct {
	name string
	path string
}

// resolveSources locates each named source. No names selects stdin.
//
// Sources that resolve to the same file (through symlinks, relative and
// absolute spellings, or the search path) are read once. All occurrences of
// "-" collapse to a single stdin source placed last.
func resolveSources(ctx context.Context, names []string) ([]source, error) {
	if len(names) == 0 {
		return []source{{name: stdinName}}, nil
	}

	var (
		srcs  = make([]source, 0, len(names))
		seen  []os.FileInfo
		stdin bool
		dirs  = searchPathFrom(ctx)
	)

	for _, name := range names {
		if name == stdinSource {
			stdin = true

			continue
		}

		path, info, err := locate(name, dirs)
		if err != nil {
			return nil, err
		}

		if slices.ContainsFunc(seen, func(fi os.FileInfo) bool {
			return os.SameFile(fi, info)
		}) {
			log.DebugContext(ctx, "duplicate source skipped",
				slog.String("source", name),
			)

			continue
		}

		seen = append(seen, info)
		srcs = append(srcs, source{name: name, path: path})
	}

	if stdin {
		srcs = append(srcs, source{name: stdinName})
	}

	return srcs, nil
}

// locate finds name as given or, when relative, below one of dirs.
func locate(name string, dirs []string) (string, os.FileInfo, error) {
	candidates := []string{name}

	if !filepath.IsAbs(name) {
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, info, nil
		}
	}

	return "", nil, ErrSourceNotFound.With(slog.String("source", name))
}

// load parses the document read from src.
func load(ctx context.Context, src source) (any, error) {
	r := streamsFrom(ctx).In

	if src.path != "" {
		file, err := os.Open(src.path)
		if err != nil {
			return nil, ErrOpenSource.
				With(slog.String("source", src.name)).
				Wrap(err)
		}
		defer file.Close()

		r = file
	}

	doc, err := json.ParseReader(ctx, r, json.WithLogger(log.Default()))

	var perr *pkg.Error
	if errors.As(err, &perr) {
		return nil, perr.With(slog.String("source", src.name))
	}

	return doc, err
}

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes v to w in the given format.
func render(ctx context.Context, w io.Writer, v any, format string, indent int) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatYAML:
		data, err = json.FormatYAML(ctx, v, indent)
	default:
		data, err = json.FormatJSON(v, indent)
	}

	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
