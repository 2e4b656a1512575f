package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	Level  string   `default:"info"`
	Pretty bool     `default:"true"`
	Indent int      `default:"2"`
	Path   []string
	Empty  string
	Pprof  string   `default:"cpu"  name:"pprof-mode"`
	Secret string   `default:"x"    hidden:""`
}

func initContext(t *testing.T, confPath string, args ...string) context.Context {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing: content\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			err := (&Init{Force: tt.force}).Run(initContext(t, confPath))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(content, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, content)
			}

			if got["level"] != "info" || got["pretty"] != true {
				t.Errorf("unexpected config %v", got)
			}

			if _, ok := got["existing"]; ok {
				t.Error("existing file was not overwritten")
			}
		})
	}
}

func TestInitSettings(t *testing.T) {
	ktx := kongContextFrom(initContext(t, "unused", "--path=a,b", "--level=debug"))

	var keys []string

	for _, item := range (&Init{}).settings(ktx) {
		keys = append(keys, item.Key.(string))
	}

	if got, want := strings.Join(keys, ","), "level,pretty,indent,path"; got != want {
		t.Errorf("settings keys = %s, want %s", got, want)
	}
}

func TestIsUnset(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"", true},
		{[]string{}, true},
		{[]string(nil), true},
		{"x", false},
		{false, false},
		{0, false},
		{[]int{1}, false},
	}

	for _, tt := range tests {
		if got := isUnset(tt.v); got != tt.want {
			t.Errorf("isUnset(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
