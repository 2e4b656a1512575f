package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/pkg"
)

// writeFile creates a file named name in dir holding content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func names(srcs []source) []string {
	out := make([]string, len(srcs))
	for i, s := range srcs {
		out[i] = s.name
	}

	return out
}

func TestResolveSources_Empty(t *testing.T) {
	srcs, err := resolveSources(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(srcs) != 1 || srcs[0].path != "" || srcs[0].name != stdinName {
		t.Errorf("resolveSources(nil) = %+v, want stdin", srcs)
	}
}

func TestResolveSources_Duplicates(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.json", "{}")
	other := writeFile(t, dir, "b.json", "[]")

	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(file, link); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)

	srcs, err := resolveSources(context.Background(), []string{
		file, "a.json", "./a.json", link, other, file,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := names(srcs); len(got) != 2 || got[0] != file || got[1] != other {
		t.Errorf("sources = %v, want [%s %s]", got, file, other)
	}
}

func TestResolveSources_StdinLast(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.json", "{}")

	srcs, err := resolveSources(context.Background(), []string{"-", file, "-"})
	if err != nil {
		t.Fatal(err)
	}

	if len(srcs) != 2 || srcs[0].path != file || srcs[1].path != "" {
		t.Errorf("sources = %+v, want file then a single stdin", srcs)
	}
}

func TestResolveSources_SearchPath(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	want := writeFile(t, second, "found.json", "{}")
	writeFile(t, second, "dup.json", "{}")
	shadow := writeFile(t, first, "dup.json", "[]")

	ctx := WithSearchPath(context.Background(), []string{first, second})

	srcs, err := resolveSources(ctx, []string{"found.json", "dup.json"})
	if err != nil {
		t.Fatal(err)
	}

	if srcs[0].path != want || srcs[0].name != "found.json" {
		t.Errorf("found.json resolved to %+v", srcs[0])
	}

	if srcs[1].path != shadow {
		t.Errorf("dup.json resolved to %s, want first directory %s", srcs[1].path, shadow)
	}
}

func TestResolveSources_NotFound(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{filepath.Join(dir, "missing.json"), dir} {
		_, err := resolveSources(context.Background(), []string{name})
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("resolveSources(%q) error = %v, want ErrSourceNotFound", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"a": 1}`)

	if _, err := load(context.Background(), source{name: "good", path: good}); err != nil {
		t.Fatal(err)
	}

	ctx := WithStreams(context.Background(), Streams{In: strings.NewReader("[1,")})

	_, err := load(ctx, source{name: stdinName})
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error = %v, want syntax error", err)
	}

	_, err = load(context.Background(), source{name: "gone", path: filepath.Join(dir, "gone")})
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("error = %v, want ErrOpenSource", err)
	}
}

func TestLoad_SyntaxErrorAttrs(t *testing.T) {
	dir := t.TempDir()
	deep := writeFile(t, dir, "deep.json", strings.Repeat("[", json.MaxDepth+1))

	_, err := load(context.Background(), source{name: "deep", path: deep})
	if !errors.Is(err, json.ErrSyntax) || !errors.Is(err, json.ErrNesting) {
		t.Fatalf("error = %v, want ErrSyntax wrapping ErrNesting", err)
	}

	if line, col, ok := json.Position(err); !ok || line != 1 || col != json.MaxDepth+1 {
		t.Errorf("Position = %d:%d %v, want 1:%d", line, col, ok, json.MaxDepth+1)
	}

	var perr *pkg.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not *pkg.Error", err)
	}

	if v, ok := perr.Attr("source"); !ok || v.String() != "deep" {
		t.Errorf("source attr = %v, %v, want deep", v, ok)
	}
}

func TestStreamsFrom(t *testing.T) {
	s := streamsFrom(context.Background())
	if s.In != os.Stdin || s.Out != os.Stdout || s.Err != os.Stderr {
		t.Error("default streams are not the process streams")
	}

	var buf bytes.Buffer

	s = streamsFrom(WithStreams(context.Background(), Streams{Out: &buf}))
	if s.Out != &buf || s.In != os.Stdin {
		t.Error("partial streams not merged with process streams")
	}
}

func TestRender(t *testing.T) {
	v := map[string]any{"k": []any{1, "two"}}

	tests := []struct {
		format string
		indent int
		want   string
	}{
		{formatJSON, 0, "{\"k\":[1,\"two\"]}\n"},
		{formatJSON, 2, "{\n  \"k\": [\n    1,\n    \"two\"\n  ]\n}\n"},
		{formatYAML, 2, "k:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			if err := render(context.Background(), &buf, v, tt.format, tt.indent); err != nil {
				t.Fatal(err)
			}

			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Errorf("render() = %q, want prefix %q", buf.String(), tt.want)
			}
		})
	}
}
