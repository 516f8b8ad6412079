package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	archiveKey     = "archive"
	packageDirKey  = "package_dir"
	searchPathsKey = "search_paths"
	logLevelKey    = "log_level"
)

// Keys lists every setting in display order.
var Keys = []string{archiveKey, packageDirKey, searchPathsKey, logLevelKey}

// ArchivePath is a user-configured archive location. When set, it takes the
// place of platform discovery.
func ArchivePath() string {
	return viper.GetString(archiveKey)
}

func SetArchivePath(path string) {
	viper.Set(archiveKey, path)
}

// PackageDir returns the configured package directory, or the "package"
// directory next to the running executable.
func PackageDir() (string, error) {
	if dir := viper.GetString(packageDirKey); dir != "" {
		return filepath.Abs(dir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "package"), nil
}

func SearchPaths() []string {
	return viper.GetStringSlice(searchPathsKey)
}

func LogLevel() string {
	return viper.GetString(logLevelKey)
}

func Get(key string) any {
	return viper.Get(key)
}
