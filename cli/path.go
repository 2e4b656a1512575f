package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/pcomb/pkg"
)

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return ErrCreateDir.Wrap(err)
		}
	}

	return nil
}

// jsonConfigFile returns the path of the JSON configuration file, a sibling
// of [pkg.ConfigFile].
func jsonConfigFile() string {
	yml := pkg.ConfigFile()

	return yml[:len(yml)-len(filepath.Ext(yml))] + ".json"
}

// searchPath returns the directories searched for relative source files:
// dirs followed by the entries of the [pkg.EnvPath] environment variable.
// Entries that are not existing directories are dropped.
func searchPath(dirs []string) []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.EnvPath)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	return filepath.SplitList(list)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
