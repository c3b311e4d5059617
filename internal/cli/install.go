package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/binfile/pkg/commands/install"
	"github.com/arthur-debert/binfile/pkg/types"
)

func newInstallCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}
}

func runInstall(cmd *cobra.Command, opts *rootOptions) error {
	mode := types.ModePlain
	switch {
	case opts.sudo:
		mode = types.ModeElevated
	case opts.userInstall:
		mode = types.ModeUserScope
	}

	_, err := install.Run(cmd.Context(), install.Options{
		File:            opts.file,
		Mode:            mode,
		IncludeVersions: opts.versions,
		DryRun:          opts.dryRun,
		Config:          opts.cfg,
		Confirm:         confirmer(opts),
		Out:             cmd.OutOrStdout(),
	})
	return err
}
