package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kralicky/zazus/pkg/patch"
	"github.com/spf13/cobra"
)

func BuildPlanCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "plan",
		Aliases:     []string{"dry-run"},
		Short:       "Show which archive entries a patch would update or add",
		Args:        cobra.NoArgs,
		Annotations: LocatorAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := opts.fileMap()
			if err != nil {
				return err
			}
			archive, err := opts.findArchive()
			if err != nil {
				return err
			}
			events, err := patch.Plan(opts.Fs, archive, files)
			if err != nil {
				return err
			}

			w := table.NewWriter()
			w.SetStyle(table.StyleColoredDark)
			w.SetTitle(archive)
			w.AppendHeader(table.Row{"ACTION", "FILE"})
			for _, ev := range events {
				w.AppendRow(table.Row{actionColors[ev.Action].Sprint(string(ev.Action)), ev.Name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Render())
			return nil
		},
	}
	return cmd
}
