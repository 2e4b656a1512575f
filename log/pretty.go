package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler. The renderer detects
// whether the output supports color.
type palette struct {
	key, str, num, dur, tim, yes, no lipgloss.Style
	levels                          map[slog.Level]lipgloss.Style
	fallback                        lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key: color("8"),
		str: color("6"),
		num: color("3"),
		dur: color("5"),
		tim: color("4"),
		yes: color("2"),
		no:  color("1"),
		levels: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): color("8"),
			slog.Level(LevelDebug): color("4"),
			slog.Level(LevelInfo):  color("2").Bold(true),
			slog.Level(LevelWarn):  color("3").Bold(true),
			slog.Level(LevelError): color("1").Bold(true),
		},
		fallback: color("6"),
	}
}

// prettyHandler renders records as colorized key=value text.
type prettyHandler struct {
	opts   slog.HandlerOptions
	layout string
	colors palette
	mu     *sync.Mutex
	w      io.Writer
	attrs  []byte
	groups []string
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	layout string,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		layout: layout,
		colors: newPalette(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if h.layout != "" && !r.Time.IsZero() {
		buf.WriteString(h.colors.tim.Render(r.Time.Format(h.layout)))
		buf.WriteByte(' ')
	}

	buf.WriteString(h.level(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(h.colors.key.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)

	prefix := h.prefix()
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(slices.Clone(h.attrs))
	prefix := h.prefix()

	for _, a := range attrs {
		h.writeAttr(buf, prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(slices.Clip(h.groups), name)

	return &c
}

func (h *prettyHandler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}

	return strings.Join(h.groups, ".") + "."
}

func (h *prettyHandler) level(l slog.Level) string {
	name := strings.ToUpper(Level(l).String())
	if style, ok := h.colors.levels[l]; ok {
		return style.Render(fmt.Sprintf("%-5s", name))
	}

	return h.colors.fallback.Render(fmt.Sprintf("%-5s", name))
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, sub, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.colors.key.Render(prefix + a.Key + "="))
	buf.WriteString(h.value(a.Value))
}

func (h *prettyHandler) value(v slog.Value) string {
	c := h.colors

	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return c.str.Render(s)

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return c.num.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return c.yes.Render("true")
		}

		return c.no.Render("false")

	case slog.KindDuration:
		return c.dur.Render(v.Duration().String())

	case slog.KindTime:
		return c.tim.Render(v.Time().Format(DefaultTimeLayout))

	default:
		return c.fallback.Render(v.String())
	}
}
