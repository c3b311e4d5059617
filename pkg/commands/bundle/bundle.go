// Package bundle implements generate mode: scan installed gems and
// write the Binfile.
package bundle

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/binfile/pkg/config"
	"github.com/arthur-debert/binfile/pkg/errors"
	"github.com/arthur-debert/binfile/pkg/gems"
	"github.com/arthur-debert/binfile/pkg/logging"
	"github.com/arthur-debert/binfile/pkg/scanner"
	"github.com/arthur-debert/binfile/pkg/script"
	"github.com/arthur-debert/binfile/pkg/types"
	"github.com/arthur-debert/binfile/pkg/ui/prompt"
)

// Options holds options for the bundle command.
type Options struct {
	// File is the output path.
	File string
	// Render controls the shape of the generated install lines.
	Render types.RenderOptions
	// DryRun prints the script instead of writing it.
	DryRun bool

	Config  *config.Config
	Source  gems.SpecSource
	Confirm prompt.Confirmer
	Out     io.Writer
}

// Run scans installed gems, renders the Binfile, and writes it. With
// DryRun the script goes to Out and the filesystem is not touched.
// Declining the overwrite prompt aborts with OVERWRITE_DECLINED.
func Run(ctx context.Context, opts Options) error {
	logger := logging.GetLogger("commands.bundle")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	source := opts.Source
	if source == nil {
		source = gems.NewGemSource()
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = prompt.NewTerminal()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	path := opts.File
	if path == "" {
		path = cfg.Bundle.File
	}

	records, err := scanner.Scan(ctx, source)
	if err != nil {
		return err
	}
	logger.Info().Int("gems", len(records)).Str("file", path).Msg("Scanned installed gems")

	content := script.NewRenderer(cfg.Install.Program, opts.Render).Render(records)

	if opts.DryRun {
		fmt.Fprint(out, content)
		return nil
	}

	if script.Exists(path) {
		overwrite, err := confirm.Confirm(fmt.Sprintf("%s exists. Overwrite?", path), cfg.Bundle.Overwrite)
		if err != nil {
			return err
		}
		if !overwrite {
			return errors.Newf(errors.ErrOverwriteDeclined, "refusing to overwrite %s", path)
		}
	}

	executable, err := confirm.Confirm(fmt.Sprintf("Mark %s executable?", path), cfg.Bundle.Executable)
	if err != nil {
		return err
	}

	if err := script.WriteFile(path, content, executable); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d gems to %s\n", len(records), path)
	return nil
}
