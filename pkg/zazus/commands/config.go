package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kralicky/zazus/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildConfigCmd represents the config command
func BuildConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit stored settings",
	}
	return cmd
}

func BuildConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := table.NewWriter()
			w.SetStyle(table.StyleColoredDark)
			w.SetTitle(viper.ConfigFileUsed())
			w.AppendHeader(table.Row{"KEY", "VALUE"})
			for _, key := range config.Keys {
				w.AppendRow(table.Row{key, fmt.Sprint(config.Get(key))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Render())
		},
	}
	return cmd
}

func BuildSetArchiveCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-archive [path]",
		Short: "Remember the location of package.nw instead of searching for it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
				if err := validateArchivePath(opts.Fs, path); err != nil {
					return err
				}
			} else if err := survey.AskOne(&survey.Input{
				Message: "Path to package.nw:",
				Default: config.ArchivePath(),
			}, &path, survey.WithValidator(survey.Required), survey.WithValidator(func(ans any) error {
				return validateArchivePath(opts.Fs, ans.(string))
			})); err != nil {
				return err
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			config.SetArchivePath(abs)
			if err := config.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "archive set to", abs)
			return nil
		},
	}
	return cmd
}

func validateArchivePath(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New(path + " is a directory")
	}
	return nil
}
