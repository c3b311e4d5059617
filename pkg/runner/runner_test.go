package runner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/binfile/pkg/runner"
	"github.com/arthur-debert/binfile/pkg/types"
	"github.com/arthur-debert/binfile/pkg/ui/prompt"
)

// fakeShell records every command and fails the ones listed in fail.
type fakeShell struct {
	commands []string
	fail     map[string]string
}

func (f *fakeShell) Run(ctx context.Context, command string) ([]byte, error) {
	f.commands = append(f.commands, command)
	if msg, ok := f.fail[command]; ok {
		return []byte(msg), errors.New("exit status 1")
	}
	return []byte("ok\n"), nil
}

func newRunner(shell *fakeShell, confirm prompt.Confirmer, dryRun bool) (*runner.Runner, *bytes.Buffer) {
	var out bytes.Buffer
	r := runner.New(runner.Options{
		Shell:          shell,
		Confirm:        confirm,
		Out:            &out,
		DryRun:         dryRun,
		ConfirmDefault: true,
	})
	return r, &out
}

func TestRunExecutesSequentially(t *testing.T) {
	shell := &fakeShell{}
	r, _ := newRunner(shell, prompt.Static{Answer: true}, false)

	commands := []string{
		"gem install bundler -v '2.4.19'",
		"gem install rake -v '13.0.6'",
	}
	results, err := r.Run(context.Background(), commands, types.ModePlain, "Binfile")
	require.NoError(t, err)

	assert.Equal(t, commands, shell.commands)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Success)
}

func TestRunContinuesPastFailures(t *testing.T) {
	shell := &fakeShell{fail: map[string]string{
		"gem install rake": "ERROR: could not find gem\n",
	}}
	r, out := newRunner(shell, prompt.Static{Answer: true}, false)

	commands := []string{"gem install rake", "gem install bundler"}
	results, err := r.Run(context.Background(), commands, types.ModePlain, "Binfile")
	require.NoError(t, err)

	// Both commands ran despite the first one failing
	assert.Equal(t, commands, shell.commands)
	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.True(t, results[1].Success)

	// Captured output of the failed command is surfaced
	assert.Contains(t, out.String(), "could not find gem")
}

func TestRunDeclinedExecutesNothing(t *testing.T) {
	shell := &fakeShell{}
	r, out := newRunner(shell, prompt.Static{Answer: false}, false)

	results, err := r.Run(context.Background(), []string{"gem install rake"}, types.ModePlain, "Binfile")
	require.NoError(t, err)

	assert.Nil(t, results)
	assert.Empty(t, shell.commands)
	assert.Contains(t, out.String(), "Aborted.")
}

func TestRunDryRunPrintsWithoutExecuting(t *testing.T) {
	shell := &fakeShell{}
	r, out := newRunner(shell, prompt.Static{Answer: true}, true)

	commands := []string{"sudo gem install rake -v '13.0.6'"}
	results, err := r.Run(context.Background(), commands, types.ModeElevated, "Binfile")
	require.NoError(t, err)

	assert.Nil(t, results)
	assert.Empty(t, shell.commands)
	assert.Contains(t, out.String(), "sudo gem install rake -v '13.0.6'")
}

func TestRunElevatedWarmsUpSudoOnce(t *testing.T) {
	shell := &fakeShell{}
	r, _ := newRunner(shell, prompt.Static{Answer: true}, false)

	commands := []string{"sudo gem install rake", "sudo gem install bundler"}
	_, err := r.Run(context.Background(), commands, types.ModeElevated, "Binfile")
	require.NoError(t, err)

	require.NotEmpty(t, shell.commands)
	assert.Equal(t, "sudo -v", shell.commands[0])
	assert.Equal(t, commands, shell.commands[1:])
}

func TestRunPlainModeSkipsWarmup(t *testing.T) {
	shell := &fakeShell{}
	r, _ := newRunner(shell, prompt.Static{Answer: true}, false)

	_, err := r.Run(context.Background(), []string{"gem install rake"}, types.ModePlain, "Binfile")
	require.NoError(t, err)

	assert.Equal(t, []string{"gem install rake"}, shell.commands)
}

func TestRunWarmupFailureDoesNotAbort(t *testing.T) {
	shell := &fakeShell{fail: map[string]string{"sudo -v": "sudo: a password is required\n"}}
	r, _ := newRunner(shell, prompt.Static{Answer: true}, false)

	results, err := r.Run(context.Background(), []string{"sudo gem install rake"}, types.ModeElevated, "Binfile")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestRunEmptyCommandList(t *testing.T) {
	shell := &fakeShell{}
	r, out := newRunner(shell, prompt.Static{Answer: true}, false)

	results, err := r.Run(context.Background(), nil, types.ModePlain, "Binfile")
	require.NoError(t, err)

	assert.Nil(t, results)
	assert.Empty(t, shell.commands)
	assert.Contains(t, out.String(), "Nothing to install.")
}

func TestRunSummaryListsFailures(t *testing.T) {
	shell := &fakeShell{fail: map[string]string{
		"gem install rake":    "boom\n",
		"gem install bundler": "boom\n",
	}}
	r, out := newRunner(shell, prompt.Static{Answer: true}, false)

	_, err := r.Run(context.Background(), []string{"gem install rake", "gem install bundler", "gem install rubocop"}, types.ModePlain, "Binfile")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "2 of 3 commands failed:")
	assert.Contains(t, out.String(), "  gem install rake")
	assert.Contains(t, out.String(), "  gem install bundler")
}
