package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/pcomb/json"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files
// holding a mapping of flag names to values, such as the file written by
// the init command:
//
//	log-level: debug
//	log-format: text
//	path:
//	  - ./testdata
//
// Command-line flags override config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, ErrLoadConfig.With(slog.String("format", "yaml")).Wrap(err)
	}

	return makeConfig(m), nil
}

// loadJSON is a [kong.ConfigurationLoader] for JSON configuration files,
// parsed with this module's own JSON grammar. The document must be an
// object of flag names to values:
//
//	{"log-level": "debug", "path": ["./testdata"]}
func loadJSON(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrLoadConfig.Wrap(err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return config{}, nil
	}

	doc, err := json.Parse(context.Background(), string(data))
	if err != nil {
		return nil, ErrLoadConfig.With(slog.String("format", "json")).Wrap(err)
	}

	m, ok := json.ToNative(doc).(map[string]any)
	if !ok {
		return nil, ErrLoadConfig.With(
			slog.String("format", "json"),
			slog.String("reason", "document is not an object"),
		)
	}

	return makeConfig(m), nil
}

// config implements [kong.Resolver] over a flat map of flag names.
type config map[string]any

// makeConfig converts decoded values into the forms kong parses: numbers
// become strings and lists become comma-separated strings.
func makeConfig(m map[string]any) config {
	c := make(config, len(m))

	for key, val := range m {
		c[key] = flagValue(val)
	}

	return c
}

func flagValue(v any) any {
	switch v := v.(type) {
	case nil, bool, string:
		return v

	case []any:
		items := make([]string, len(v))
		for i, e := range v {
			items[i] = fmt.Sprint(flagValue(e))
		}

		return strings.Join(items, ",")

	default:
		return fmt.Sprint(v)
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver]. Keys may spell hyphens in flag names
// as underscores.
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
