// Package cli wires the cobra command tree for binfile.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/binfile/internal/version"
	"github.com/arthur-debert/binfile/pkg/config"
	"github.com/arthur-debert/binfile/pkg/logging"
)

// rootOptions carries the flag values shared by bundle and install.
type rootOptions struct {
	verbosity   int
	dryRun      bool
	file        string
	sudo        bool
	userInstall bool
	versions    bool
	assumeYes   bool
	installMode bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "binfile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		// Bare `binfile` runs bundle; `binfile --install` runs install.
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.installMode {
				return runInstall(cmd, opts)
			}
			return runBundle(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVar(&opts.verbosity, "verbose", "Increase verbosity (repeat for DEBUG and TRACE)")
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Print what would happen without writing files or running commands")
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Binfile path (default \"Binfile\")")
	rootCmd.PersistentFlags().BoolVarP(&opts.sudo, "sudo", "s", false, "Prefix install commands with sudo")
	rootCmd.PersistentFlags().BoolVarP(&opts.userInstall, "user-install", "u", false, "Install gems into the user's home directory")
	rootCmd.PersistentFlags().BoolVar(&opts.versions, "versions", true, "Pin each gem to its installed version")
	rootCmd.PersistentFlags().BoolVar(&opts.assumeYes, "yes", false, "Answer yes to every prompt")
	rootCmd.Flags().BoolVar(&opts.installMode, "install", false, "Replay the Binfile instead of generating it")

	rootCmd.MarkFlagsMutuallyExclusive("sudo", "user-install")

	rootCmd.AddCommand(newBundleCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
