// Package install implements replay mode: parse a Binfile, rewrite its
// directives for the requested mode, and run the install commands.
package install

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/binfile/pkg/config"
	"github.com/arthur-debert/binfile/pkg/errors"
	"github.com/arthur-debert/binfile/pkg/logging"
	"github.com/arthur-debert/binfile/pkg/runner"
	"github.com/arthur-debert/binfile/pkg/script"
	"github.com/arthur-debert/binfile/pkg/types"
	"github.com/arthur-debert/binfile/pkg/ui/prompt"
)

// Options holds options for the install command.
type Options struct {
	// File is the Binfile to replay.
	File string
	// Mode selects the rewritten command shape.
	Mode types.Mode
	// IncludeVersions keeps the version pins from the file.
	IncludeVersions bool
	// DryRun prints the rewritten commands without running them.
	DryRun bool

	Config  *config.Config
	Shell   runner.ShellExecutor
	Confirm prompt.Confirmer
	Out     io.Writer
}

// Run parses and replays the Binfile. A missing file is fatal with
// FILE_NOT_FOUND before anything executes; per-command failures are
// reported but do not abort the run.
func Run(ctx context.Context, opts Options) ([]types.CommandResult, error) {
	logger := logging.GetLogger("commands.install")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	path := opts.File
	if path == "" {
		path = cfg.Bundle.File
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "no such file: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	directives, err := script.NewParser(cfg.Install.Program).Parse(string(data))
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("directives", len(directives)).
		Str("mode", opts.Mode.String()).
		Str("file", path).
		Msg("Parsed Binfile")

	commands := script.Rewrite(directives, opts.Mode, opts.IncludeVersions, cfg.Install.Program)

	shell := opts.Shell
	if shell == nil {
		shell = runner.NewShellExecutor(cfg.Install.Shell)
	}
	r := runner.New(runner.Options{
		Shell:          shell,
		Confirm:        opts.Confirm,
		Out:            opts.Out,
		DryRun:         opts.DryRun,
		ConfirmDefault: cfg.Install.Confirm,
	})
	return r.Run(ctx, commands, opts.Mode, path)
}
