package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(b, &entry); err != nil {
		t.Fatalf("invalid JSON record %q: %v", b, err)
	}

	return entry
}

func TestLogger_Make_Defaults(t *testing.T) {
	l := Make(nil)

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}

	if l.caller {
		t.Error("caller enabled by default")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		log     func(Logger)
		written bool
	}{
		{"trace below debug", LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{"debug below info", LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{"info at info", LevelInfo, func(l Logger) { l.Info("m") }, true},
		{"warn above info", LevelInfo, func(l Logger) { l.Warn("m") }, true},
		{"info below error", LevelError, func(l Logger) { l.Info("m") }, false},
		{"error at error", LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v (output %q)", got, tt.written, buf.String())
			}
		})
	}
}

func TestLogger_LevelEnabled(t *testing.T) {
	l := Make(nil, WithLevel(LevelDebug))

	if l.LevelEnabled(LevelTrace) {
		t.Error("trace enabled at debug level")
	}

	if !l.LevelEnabled(LevelDebug) || !l.LevelEnabled(LevelError) {
		t.Error("debug or error disabled at debug level")
	}

	var zero Logger
	if zero.LevelEnabled(LevelError) {
		t.Error("zero logger reports enabled level")
	}
}

func TestLogger_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))

	l.Trace("step", slog.String("parser", "digit"), slog.Int("consumed", 1))

	entry := decode(t, buf.Bytes())

	if _, ok := entry["time"]; ok {
		t.Errorf("unexpected time field: %v", entry)
	}

	want := map[string]any{
		"level":    "TRACE",
		"msg":      "step",
		"parser":   "digit",
		"consumed": float64(1),
	}

	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithTimeLayout("2006")).Info("m")

	got, _ := decode(t, buf.Bytes())["time"].(string)
	if len(got) != 4 {
		t.Errorf("time = %q, want a four digit year", got)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true)).Info("m")

	src, ok := decode(t, buf.Bytes())["source"].(map[string]any)
	if !ok {
		t.Fatalf("no source in %s", buf.String())
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %q, want log_test.go", file)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
		want   []string
	}{
		{"plain", false, []string{"level=INFO", "msg=hello", "user=alice"}},
		{"pretty", true, []string{"INFO", "hello", "user=alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := Make(&buf,
				WithFormat(FormatText),
				WithPretty(tt.pretty),
				WithTimeLayout("none"))

			l.Info("hello", slog.String("user", "alice"))

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q does not contain %q", buf.String(), w)
				}
			}
		})
	}
}

func TestLogger_PrettyKeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	l = l.With(slog.String("file", "a.json"))
	l.Logger = l.WithGroup("parse")
	l.Info("done", slog.Int("offset", 7), slog.Group("span", slog.Int("len", 2)))

	out := buf.String()
	for _, w := range []string{"file=a.json", "parse.offset=7", "parse.span.len=2"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q does not contain %q", out, w)
		}
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf).With(slog.String("key", "value"))
	l.Info("m")

	if got := decode(t, buf.Bytes())["key"]; got != "value" {
		t.Errorf("key = %v, want value", got)
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("base level changed to %v", base.Level())
	}

	wrapped.Debug("m")

	if buf.Len() == 0 {
		t.Error("wrapped logger did not inherit output")
	}

	var zero Logger
	if got := zero.Wrap(WithLevel(LevelWarn)).Level(); got != LevelWarn {
		t.Errorf("wrapped zero logger level = %v", got)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Trace("m")
	l.Debug("m")
	l.Info("m")
	l.Warn("m")
	l.Error("m")
	l.InfoContext(context.Background(), "m")

	if l.With(slog.String("k", "v")).Logger != nil {
		t.Error("With on zero logger created a handler")
	}
}

func TestLogger_ContextMethods(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func(Logger, context.Context, string, ...slog.Attr)
	}{
		{"TraceContext", Logger.TraceContext},
		{"DebugContext", Logger.DebugContext},
		{"InfoContext", Logger.InfoContext},
		{"WarnContext", Logger.WarnContext},
		{"ErrorContext", Logger.ErrorContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.fn(Make(&buf, WithLevel(LevelTrace)), ctx, "context message")

			if !strings.Contains(buf.String(), "context message") {
				t.Errorf("message not logged: %q", buf.String())
			}
		})
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func TestLogger_Concurrent(t *testing.T) {
	var out syncBuffer

	for _, format := range []Format{FormatJSON, FormatText} {
		l := Make(&out, WithFormat(format))

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Go(func() {
				l.With(slog.Int("worker", i)).Info("tick")
			})
		}

		wg.Wait()
	}

	if got := strings.Count(out.buf.String(), "tick"); got != 32 {
		t.Errorf("logged %d records, want 32", got)
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	l := Make(nil)

	for b.Loop() {
		l.Info("benchmark", slog.Int("n", 1))
	}
}

func BenchmarkLogger_TraceDisabled(b *testing.B) {
	l := Make(nil)

	for b.Loop() {
		l.Trace("benchmark", slog.Int("n", 1))
	}
}
