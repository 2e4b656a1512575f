package json

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToNative converts a document to plain Go values. Objects become
// map[string]any (the last duplicate key wins), arrays become []any, and
// numbers become int when they are integers in range, float64 otherwise.
// Negative zero stays a float64. Numbers a float64 cannot represent, such
// as 1e400, stay [Number].
func ToNative(v any) any {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return nil
		}

		m := make(map[string]any, len(v.Members))
		for _, mem := range v.Members {
			m[mem.Key] = ToNative(mem.Value)
		}

		return m

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToNative(e)
		}

		return out

	case Number:
		return v.native()

	default:
		return v
	}
}

func (n Number) native() any {
	i, err := strconv.ParseInt(string(n), 10, strconv.IntSize)
	if err == nil && (i != 0 || !strings.HasPrefix(string(n), "-")) {
		return int(i)
	}

	f, err := n.Float64()
	if err != nil {
		return n
	}

	return f
}

// FormatJSON renders a document as JSON terminated by a newline. Members
// keep their order and numbers their original text. An indent greater
// than zero selects multi-line output with that many spaces per level.
func FormatJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(v); err != nil {
		return nil, ErrFormat.Wrap(err)
	}

	return buf.Bytes(), nil
}

// FormatYAML renders a document as YAML with member order preserved. An
// indent of zero uses the encoder's default.
func FormatYAML(ctx context.Context, v any, indent int) ([]byte, error) {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	}

	data, err := yaml.MarshalContext(ctx, toYAML(v), opts...)
	if err != nil {
		return nil, ErrFormat.Wrap(err)
	}

	return data, nil
}

func toYAML(v any) any {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return nil
		}

		ms := make(yaml.MapSlice, len(v.Members))
		for i, m := range v.Members {
			ms[i] = yaml.MapItem{Key: m.Key, Value: toYAML(m.Value)}
		}

		return ms

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toYAML(e)
		}

		return out

	case Number:
		return v.native()

	default:
		return v
	}
}
