package cli

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/cykscope/pkg"
)

// baseConfig is the base name of the configuration files and the optional
// top-level section read from the YAML file.
const baseConfig = "config"

const defaultDirMode os.FileMode = 0o700

// appName returns the directory name used under the user config and cache
// roots: the executable name, or [pkg.Name] for debugger builds and hidden
// executables.
var appName = sync.OnceValue(
	func() string {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}

		name := filepath.Base(exe)
		name = strings.TrimSuffix(name, filepath.Ext(name))

		if strings.HasPrefix(name, "__debug_bin") || strings.HasPrefix(name, ".") {
			return pkg.Name
		}

		return name
	},
)

// userDir joins appName to the directory returned by root, falling back to
// fallback under the home directory, then to the working directory.
func userDir(root func() (string, error), fallback string) string {
	dir, err := root()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, appName())
}

var (
	configDir = sync.OnceValue(func() string { return userDir(os.UserConfigDir, ".config") })
	cacheDir  = sync.OnceValue(func() string { return userDir(os.UserCacheDir, ".cache") })
)

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
