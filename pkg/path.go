package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the executable's base name without extension, used to name
// the configuration and cache directories. Debugger builds map to [Name]
// and leading dots are removed. An empty result also maps to [Name].
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		ext := filepath.Ext(filepath.Base(id))
		id = strings.TrimSuffix(filepath.Base(id), ext)

		id = debugBin.ReplaceAllString(id, Name)
		id = strings.TrimLeft(id, ".")

		if id == "" {
			return Name
		}

		return id
	},
)

// ConfigDir returns the configuration directory path.
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the cache directory path used for transient files.
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// ConfigFile returns the path of the YAML configuration file.
func ConfigFile() string { return filepath.Join(ConfigDir(), "config.yaml") }

var debugBin = regexp.MustCompile(`^__debug_bin\d*$`)

// userDir returns the Prefix subdirectory of the directory reported by
// base, falling back to a hidden directory in the home directory and then
// the working directory.
func userDir(base func() (string, error), hidden string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, hidden)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
