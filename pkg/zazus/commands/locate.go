package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func BuildLocateCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "locate",
		Short:       "Print the path of the game archive",
		Args:        cobra.NoArgs,
		Annotations: LocatorAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := opts.findArchive()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), archive)
			return nil
		},
	}
	return cmd
}
