package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/binfile/pkg/commands/bundle"
	"github.com/arthur-debert/binfile/pkg/types"
	"github.com/arthur-debert/binfile/pkg/ui/prompt"
)

func newBundleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "bundle",
		Short:   MsgBundleShort,
		Long:    MsgBundleLong,
		Example: MsgBundleExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, opts)
		},
	}
}

func runBundle(cmd *cobra.Command, opts *rootOptions) error {
	return bundle.Run(cmd.Context(), bundle.Options{
		File: opts.file,
		Render: types.RenderOptions{
			IncludeVersions: opts.versions,
			UserScope:       opts.userInstall,
			Elevate:         opts.sudo,
		},
		DryRun:  opts.dryRun,
		Config:  opts.cfg,
		Confirm: confirmer(opts),
		Out:     cmd.OutOrStdout(),
	})
}

// confirmer picks the prompt implementation: --yes short-circuits every
// question, otherwise the terminal asks.
func confirmer(opts *rootOptions) prompt.Confirmer {
	if opts.assumeYes {
		return prompt.Static{Answer: true}
	}
	return prompt.NewTerminal()
}
