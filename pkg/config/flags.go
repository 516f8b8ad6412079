package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BindFlags registers the persistent override flags and binds them to their
// config keys. Flags only take effect when set explicitly.
func BindFlags(flags *pflag.FlagSet) error {
	flags.String("archive", "", "path to package.nw (skips automatic discovery)")
	flags.String("package-dir", "", "directory holding the patch files (default: \"package\" next to the executable)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		archiveKey:    "archive",
		packageDirKey: "package-dir",
		logLevelKey:   "log-level",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}
