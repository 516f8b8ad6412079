package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "ZAZUS"

func DataDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "zazus-cli-data"), nil
}

func UpsertDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return dir, os.MkdirAll(dir, 0755)
}

func Load(filename string) error {
	if err := Read(filename); err != nil {
		return err
	}
	return Persist(filename)
}

// Read applies defaults and environment overrides and reads filename if it
// exists. It never writes to disk.
func Read(filename string) error {
	viper.SetConfigFile(filename)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}
	return viper.ReadInConfig()
}

// Persist writes the current settings to filename if it does not exist yet.
func Persist(filename string) error {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return viper.SafeWriteConfigAs(filename)
	}
	return nil
}

func Save() error {
	return viper.WriteConfig()
}

func setDefaults() {
	viper.SetDefault(archiveKey, "")
	viper.SetDefault(packageDirKey, "")
	viper.SetDefault(searchPathsKey, []string{})
	viper.SetDefault(logLevelKey, "info")
}
