package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kralicky/zazus/pkg/patch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var actionColors = map[patch.Action]text.Colors{
	patch.ActionUpdate: {text.FgYellow},
	patch.ActionAdd:    {text.FgGreen},
}

var actionLabels = map[patch.Action]string{
	patch.ActionUpdate: "updating file:",
	patch.ActionAdd:    "adding file:",
}

func BuildPatchCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "patch",
		Short:       "Patch the game archive (default when no command is given)",
		Args:        cobra.NoArgs,
		Annotations: LocatorAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunPatch(cmd, opts)
		},
	}
	return cmd
}

func RunPatch(cmd *cobra.Command, opts *Options) error {
	files, err := opts.fileMap()
	if err != nil {
		return err
	}
	archive, err := opts.findArchive()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text.Bold.Sprint("patching archive:"), archive)
	err = patch.Patch(opts.Fs, archive, files, patch.Options{
		OnEvent: func(ev patch.Event) {
			fmt.Fprintln(out, actionColors[ev.Action].Sprint(actionLabels[ev.Action]), ev.Name)
		},
	})
	if err != nil {
		return err
	}
	log.Infof("patched %d file(s) in %s", files.Len(), archive)
	return nil
}
