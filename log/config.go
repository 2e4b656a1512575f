package log

import (
	"io"
	"iter"
	"log/slog"
	"strings"
	"time"
)

// Level is the severity of a log record.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the level of a logger created without [WithLevel].
const DefaultLevel = LevelInfo

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelTrace, "trace"},
	{LevelDebug, "debug"},
	{LevelInfo, "info"},
	{LevelWarn, "warn"},
	{LevelError, "error"},
}

func (l Level) String() string {
	for _, n := range levelNames {
		if n.level == l {
			return n.name
		}
	}

	return strings.ToLower(slog.Level(l).String())
}

// Levels returns an iterator over the names of all defined levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range levelNames {
			if !yield(n.name) {
				return
			}
		}
	}
}

// ParseLevel parses a level name. Besides the names yielded by [Levels] it
// accepts anything [slog.Level.UnmarshalText] does, such as "debug+2".
// Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format is the encoding of log records.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the format of a logger created without [WithFormat].
const DefaultFormat = FormatJSON

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Formats returns an iterator over the names of all defined formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range []Format{FormatJSON, FormatText} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a format name, returning [DefaultFormat] if s is not
// recognized.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return DefaultFormat
	}
}

// DefaultTimeLayout is the timestamp layout used without [WithTimeLayout].
const DefaultTimeLayout = time.RFC3339

const (
	DefaultCaller = false
	DefaultPretty = true
)

// config is an immutable logger configuration. Options return modified
// copies.
type config struct {
	output io.Writer
	layout string
	level  Level
	format Format
	caller bool
	pretty bool
}

// Option modifies a logger configuration.
type Option func(config) config

func makeConfig(w io.Writer, opts ...Option) config {
	return WithDefaults(w)(config{}).apply(opts...)
}

func (c config) apply(opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// handler builds the slog.Handler described by c.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if c.layout == "" {
					return slog.Attr{}
				}

				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(c.layout))
				}

			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatText:
		if c.pretty {
			return newPrettyHandler(c.output, opts, c.layout)
		}

		return slog.NewTextHandler(c.output, opts)

	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	default:
		return slog.DiscardHandler
	}
}

// WithDefaults resets every setting to its default and directs output to w.
// A nil writer discards output.
func WithDefaults(w io.Writer) Option {
	return func(config) config {
		if w == nil {
			w = io.Discard
		}

		return config{
			output: w,
			layout: DefaultTimeLayout,
			level:  DefaultLevel,
			format: DefaultFormat,
			caller: DefaultCaller,
			pretty: DefaultPretty,
		}
	}
}

// WithOutput sets the destination of log records. A nil writer discards
// output.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel sets the minimum level of records that are written.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat sets the record encoding.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout. Named layouts of the [time]
// package are recognized case-insensitively ("RFC3339", "kitchen",
// "stampmilli", ...); anything else is used verbatim. An empty layout or
// "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.layout = resolveLayout(layout)

		return c
	}
}

// WithCaller controls whether the source location of the caller is logged.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty controls colorized rendering of text output.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

var namedLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"ms":          time.StampMilli,
	"us":          time.StampMicro,
	"ns":          time.StampNano,
	"none":        "",
}

func resolveLayout(layout string) string {
	key := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if key == "" {
		return ""
	}

	if std, ok := namedLayouts[key]; ok {
		return std
	}

	return layout
}
