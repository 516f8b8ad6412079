package zazus

import (
	"path/filepath"

	"github.com/kralicky/zazus/pkg/config"
	"github.com/kralicky/zazus/pkg/zazus/commands"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// BuildRootCmd builds the command tree for the given platform. Running the
// root command without arguments patches the game archive.
func BuildRootCmd(goos string) *cobra.Command {
	opts := &commands.Options{
		GOOS: goos,
		Fs:   afero.NewOsFs(),
	}

	rootCmd := &cobra.Command{
		Use:           "zazus",
		Short:         "Patch Save the Dodos with the files in the package directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   commands.LocatorAnnotations,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DataDir()
			if err != nil {
				return err
			}
			configFile := filepath.Join(dataDir, "cli-config.yaml")
			if err := config.Read(configFile); err != nil {
				return err
			}
			if err := setupLogging(config.LogLevel()); err != nil {
				return err
			}
			// unsupported platforms fail here, before anything is written
			if commands.NeedsLocator(cmd) {
				if err := opts.SelectLocator(); err != nil {
					return err
				}
			}
			if _, err := config.UpsertDataDir(); err != nil {
				return err
			}
			return config.Persist(configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunPatch(cmd, opts)
		},
	}
	if err := config.BindFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	configCmd := commands.BuildConfigCmd()
	configCmd.AddCommand(commands.BuildConfigShowCmd())
	configCmd.AddCommand(commands.BuildSetArchiveCmd(opts))

	rootCmd.AddCommand(commands.BuildPatchCmd(opts))
	rootCmd.AddCommand(commands.BuildLocateCmd(opts))
	rootCmd.AddCommand(commands.BuildPlanCmd(opts))
	rootCmd.AddCommand(configCmd)
	//+cobra:subcommands

	return rootCmd
}
