package cli

// Message constants
const (
	MsgRootShort = "Bundle and replay the gems behind your shell commands"
	MsgRootLong  = `binfile inventories the locally installed gems that ship executables,
writes them to a Binfile script, and replays that script on another
machine to reinstall them, optionally with sudo or --user-install.`

	MsgBundleShort   = "Write installed gems with executables to a Binfile"
	MsgBundleLong    = "Scan the locally installed gems, keep the ones that ship executables, and write one install line per gem to the Binfile.\n\nFor gems installed at several versions only the newest is kept; the comment above each line lists the executables the gem provides."
	MsgBundleExample = `  binfile                          # Write ./Binfile
  binfile bundle --versions=false  # Without version pins
  binfile bundle -s -f gems.sh     # With sudo prefixes, custom path
  binfile bundle --dry-run         # Print instead of writing`

	MsgInstallShort   = "Replay a Binfile, reinstalling every gem in it"
	MsgInstallLong    = "Parse a previously generated Binfile and run one install command per line.\n\nA line that fails to install is reported and the run continues; a line that fails to parse aborts the run before anything is installed."
	MsgInstallExample = `  binfile install                  # Replay ./Binfile
  binfile install -u               # Rewrite lines with --user-install
  binfile install -s --dry-run     # Show the sudo commands only
  binfile --install -f gems.sh     # Flag form, custom path`

	MsgGenConfigShort   = "Generate the default configuration file"
	MsgGenConfigLong    = "Output the default configuration with every value commented out, or write it to the user config directory.\n\nAn existing config file is never overwritten."
	MsgGenConfigExample = `  binfile gen-config               # Output to stdout
  binfile gen-config -w            # Write to the config dir`
)
