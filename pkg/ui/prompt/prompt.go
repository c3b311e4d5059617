// Package prompt provides confirmation dialogs for console interaction.
// The terminal is put into raw mode only for the single answer
// keystroke and restored on every exit path; when stdin is not a
// terminal the caller's default answer is used instead.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/arthur-debert/binfile/pkg/errors"
)

// Confirmer answers yes/no questions.
type Confirmer interface {
	// Confirm asks question and returns the answer. def is both the
	// answer for a bare Enter and the non-interactive fallback.
	Confirm(question string, def bool) (bool, error)
}

// Terminal is the interactive Confirmer reading one keystroke from a
// TTY.
type Terminal struct {
	in  *os.File
	out io.Writer
}

// NewTerminal creates a Confirmer on stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// Confirm displays the question with a [Y/n] or [y/N] marker and reads
// a single key: y/n answer, Enter takes the default, Ctrl-C aborts.
// On a non-TTY stdin the default is returned without blocking.
func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	fmt.Fprintf(t.out, "%s %s ", question, marker)

	if !isatty.IsTerminal(t.in.Fd()) && !isatty.IsCygwinTerminal(t.in.Fd()) {
		fmt.Fprintln(t.out, answerWord(def))
		return def, nil
	}

	answer, err := t.readKey(def)
	if err != nil {
		fmt.Fprintln(t.out)
		return false, err
	}

	fmt.Fprintln(t.out, answerWord(answer))
	return answer, nil
}

// readKey reads keystrokes in raw mode until one answers the question.
// Terminal state is restored before returning on every path.
func (t *Terminal) readKey(def bool) (bool, error) {
	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to enter raw terminal mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	buf := make([]byte, 1)
	for {
		if _, err := t.in.Read(buf); err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "failed to read confirmation key")
		}
		switch buf[0] {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N':
			return false, nil
		case '\r', '\n':
			return def, nil
		case 0x03, 0x04: // Ctrl-C, Ctrl-D
			return false, errors.New(errors.ErrUserAbort, "interrupted")
		}
	}
}

func answerWord(answer bool) string {
	if answer {
		return "yes"
	}
	return "no"
}

// Static is a Confirmer with a fixed answer, used for --yes runs and
// in tests.
type Static struct {
	Answer bool
}

// Confirm returns the fixed answer.
func (s Static) Confirm(question string, def bool) (bool, error) {
	return s.Answer, nil
}
