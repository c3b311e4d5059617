// Package runner executes rewritten install commands sequentially in a
// subordinate shell, reporting per-command success or failure.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/binfile/pkg/logging"
	"github.com/arthur-debert/binfile/pkg/types"
	"github.com/arthur-debert/binfile/pkg/ui/prompt"
)

// ShellExecutor runs one command string in a shell and returns its
// combined output.
type ShellExecutor interface {
	Run(ctx context.Context, command string) ([]byte, error)
}

// shExecutor runs commands through `<shell> -c`.
type shExecutor struct {
	shell string
}

// NewShellExecutor creates an executor for the given shell binary.
func NewShellExecutor(shell string) ShellExecutor {
	if shell == "" {
		shell = "sh"
	}
	return &shExecutor{shell: shell}
}

func (e *shExecutor) Run(ctx context.Context, command string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.shell, "-c", command)

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	logging.LogCommand(e.shell, []string{"-c", command})
	err := cmd.Run()
	return combined.Bytes(), err
}

// Options configures a Runner.
type Options struct {
	Shell   ShellExecutor
	Confirm prompt.Confirmer
	Out     io.Writer
	DryRun  bool
	// ConfirmDefault is the answer taken when the prompt cannot ask.
	ConfirmDefault bool
}

// Runner drives one install run.
type Runner struct {
	shell          ShellExecutor
	confirm        prompt.Confirmer
	out            io.Writer
	dryRun         bool
	confirmDefault bool
	logger         zerolog.Logger
}

// New creates a runner. Missing options fall back to a real shell, the
// interactive terminal prompt, and stdout.
func New(opts Options) *Runner {
	shell := opts.Shell
	if shell == nil {
		shell = NewShellExecutor("sh")
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = prompt.NewTerminal()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		shell:          shell,
		confirm:        confirm,
		out:            out,
		dryRun:         opts.DryRun,
		confirmDefault: opts.ConfirmDefault,
		logger:         logging.GetLogger("runner"),
	}
}

// sudoWarmup is run once before an elevated batch so the user answers
// a single password prompt instead of one per install line.
const sudoWarmup = "sudo -v"

// Run confirms and executes the command sequence. A declined
// confirmation returns no results and no error. A failing command is
// reported and the run continues; partial failure is not an error.
func (r *Runner) Run(ctx context.Context, commands []string, mode types.Mode, source string) ([]types.CommandResult, error) {
	if len(commands) == 0 {
		fmt.Fprintln(r.out, "Nothing to install.")
		return nil, nil
	}

	if r.dryRun {
		for _, cmd := range commands {
			fmt.Fprintln(r.out, cmd)
		}
		return nil, nil
	}

	question := fmt.Sprintf("Install %d gems from %s?", len(commands), source)
	proceed, err := r.confirm.Confirm(question, r.confirmDefault)
	if err != nil {
		return nil, err
	}
	if !proceed {
		r.logger.Info().Str("source", source).Msg("Install run declined")
		fmt.Fprintln(r.out, "Aborted.")
		return nil, nil
	}

	if mode == types.ModeElevated {
		r.warmupSudo(ctx)
	}

	results := make([]types.CommandResult, 0, len(commands))
	for _, command := range commands {
		results = append(results, r.runOne(ctx, command))
	}

	r.printSummary(results)
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, command string) types.CommandResult {
	fmt.Fprintln(r.out, command)

	output, err := r.shell.Run(ctx, command)
	result := types.CommandResult{
		Command: command,
		Success: err == nil,
		Output:  string(output),
		Err:     err,
	}

	if err == nil {
		pterm.Success.WithWriter(r.out).Println(command)
	} else {
		r.logger.Error().Err(err).Str("command", command).Msg("Install command failed")
		pterm.Error.WithWriter(r.out).Println(command)
		if trimmed := strings.TrimSpace(result.Output); trimmed != "" {
			fmt.Fprintln(r.out, trimmed)
		}
	}
	return result
}

func (r *Runner) warmupSudo(ctx context.Context) {
	if _, err := r.shell.Run(ctx, sudoWarmup); err != nil {
		// Each install line carries its own sudo; the batch can still
		// proceed, just with more prompts.
		r.logger.Warn().Err(err).Msg("sudo warm-up failed")
	}
}

func (r *Runner) printSummary(results []types.CommandResult) {
	var failed []string
	for _, res := range results {
		if !res.Success {
			failed = append(failed, res.Command)
		}
	}

	if len(failed) == 0 {
		pterm.Success.WithWriter(r.out).Printfln("Installed %d gems.", len(results))
		return
	}

	pterm.Warning.WithWriter(r.out).Printfln("%d of %d commands failed:", len(failed), len(results))
	for _, cmd := range failed {
		fmt.Fprintf(r.out, "  %s\n", cmd)
	}
}
