package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/binfile/pkg/commands/genconfig"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.Options{Write: write})
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return nil
			}
			if result.FileWritten != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.FileWritten)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to the user config dir instead of stdout")
	return cmd
}
