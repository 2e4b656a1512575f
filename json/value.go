package json

import (
	"bytes"
	stdjson "encoding/json"
	"iter"
	"slices"
	"strconv"
)

// Number is a JSON number in its original textual form.
type Number string

func (n Number) String() string { return string(n) }

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64. It fails for numbers with a
// fraction or exponent.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// MarshalJSON writes the number exactly as it was parsed.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}

	return []byte(n), nil
}

// Member is a key/value pair of an [Object].
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object. Members are kept in document order, duplicates
// included.
type Object struct {
	Members []Member
}

// Len returns the number of members, counting duplicates.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.Members)
}

// Get returns the value of the last member named key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	for _, m := range slices.Backward(o.Members) {
		if m.Key == key {
			return m.Value, true
		}
	}

	return nil, false
}

// Keys returns the distinct member keys in order of first appearance.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, 0, len(o.Members))
	for _, m := range o.Members {
		if !slices.Contains(keys, m.Key) {
			keys = append(keys, m.Key)
		}
	}

	return keys
}

// All iterates over every member in order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}

		for _, m := range o.Members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// MarshalJSON writes the members in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, m := range o.Members {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encode(&buf, m.Key); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := encode(&buf, m.Value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encode appends the compact encoding of v to buf without escaping HTML.
func encode(buf *bytes.Buffer, v any) error {
	enc := stdjson.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.Truncate(buf.Len() - 1) // Encode appends a newline

	return nil
}
