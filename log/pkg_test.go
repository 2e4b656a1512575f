package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func swapDefault(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()

	original := Default()
	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	})

	var buf bytes.Buffer
	Config(append([]Option{WithOutput(&buf)}, opts...)...)

	return &buf
}

func TestPackage_Functions(t *testing.T) {
	buf := swapDefault(t, WithLevel(LevelTrace), WithFormat(FormatJSON))
	ctx := context.Background()

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", func(m string, a ...slog.Attr) { TraceContext(ctx, m, a...) }, "TRACE"},
		{"DebugContext", func(m string, a ...slog.Attr) { DebugContext(ctx, m, a...) }, "DEBUG"},
		{"InfoContext", func(m string, a ...slog.Attr) { InfoContext(ctx, m, a...) }, "INFO"},
		{"WarnContext", func(m string, a ...slog.Attr) { WarnContext(ctx, m, a...) }, "WARN"},
		{"ErrorContext", func(m string, a ...slog.Attr) { ErrorContext(ctx, m, a...) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			out := buf.String()
			for _, w := range []string{"package message", `"level":"` + tt.level + `"`, `"key":"value"`} {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestPackage_With(t *testing.T) {
	buf := swapDefault(t)

	With(slog.String("component", "json")).Info("m")

	if !strings.Contains(buf.String(), `"component":"json"`) {
		t.Errorf("attribute missing from %q", buf.String())
	}
}

func TestConfig_Accumulates(t *testing.T) {
	buf := swapDefault(t, WithFormat(FormatJSON))

	Config(WithLevel(LevelWarn))
	Config(WithTimeLayout("none"))

	if got := Default().Level(); got != LevelWarn {
		t.Errorf("level = %v, want warn", got)
	}

	Info("dropped")
	Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"msg":"kept"`) {
		t.Errorf("output %q", out)
	}

	if strings.Contains(out, `"time"`) {
		t.Errorf("time not removed: %q", out)
	}
}
