package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "pcomb"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Expected Description to be set")
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from VERSION file, so it should not be empty.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}

	if Version == "" {
		t.Error("Expected Version to be non-empty")
	}
}

func TestPrefix(t *testing.T) {
	p := Prefix()
	if p == "" || strings.HasPrefix(p, ".") {
		t.Errorf("Prefix() = %q", p)
	}

	if debugBin.ReplaceAllString("__debug_bin123", Name) != Name {
		t.Error("debugger binary name not mapped to Name")
	}
}

func TestDirs(t *testing.T) {
	for name, dir := range map[string]string{
		"config": ConfigDir(),
		"cache":  CacheDir(),
	} {
		if filepath.Base(dir) != Prefix() {
			t.Errorf("%s dir %q does not end in %q", name, dir, Prefix())
		}
	}

	if got := ConfigFile(); filepath.Dir(got) != ConfigDir() || filepath.Base(got) != "config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}

func TestUserDir(t *testing.T) {
	fail := func() (string, error) { return "", os.ErrNotExist }

	dir := userDir(fail, ".hidden")
	if filepath.Base(dir) != Prefix() {
		t.Errorf("userDir() = %q", dir)
	}

	ok := func() (string, error) { return "/base", nil }
	if got, want := userDir(ok, ".hidden"), filepath.Join("/base", Prefix()); got != want {
		t.Errorf("userDir() = %q, want %q", got, want)
	}
}
