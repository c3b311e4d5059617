// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code extraction

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/binfile/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "file_not_found_error",
			code:    errors.ErrFileNotFound,
			message: "Binfile not found",
			wantStr: "[FILE_NOT_FOUND] Binfile not found",
		},
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "unrecognized install line",
			wantStr: "[PARSE_ERROR] unrecognized install line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileWrite, "writing Binfile")

	if got := err.Error(); got != "[FILE_WRITE] writing Binfile: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is on the inner error")
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	inner := stderrors.New("exit status 1")
	err := errors.Wrapf(inner, errors.ErrCommandExecute, "running %q", "gem install rake")

	want := `[COMMAND_EXECUTE] running "gem install rake": exit status 1`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsCode(t *testing.T) {
	err := errors.New(errors.ErrOverwriteDeclined, "user declined overwrite")
	wrapped := fmt.Errorf("bundle: %w", err)

	if !errors.IsCode(wrapped, errors.ErrOverwriteDeclined) {
		t.Error("IsCode should see through fmt.Errorf wrapping")
	}
	if errors.IsCode(wrapped, errors.ErrFileNotFound) {
		t.Error("IsCode matched the wrong code")
	}
	if errors.IsCode(nil, errors.ErrFileNotFound) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestGetCode(t *testing.T) {
	if got := errors.GetCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetCode(plain error) = %v, want ErrUnknown", got)
	}

	err := errors.Newf(errors.ErrSpecQuery, "gem query failed after %d attempts", 1)
	if got := errors.GetCode(err); got != errors.ErrSpecQuery {
		t.Errorf("GetCode() = %v, want ErrSpecQuery", got)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrParse, "bad line").
		WithDetail("line", 12).
		WithDetail("text", "gem frobnicate rake")

	if err.Details["line"] != 12 {
		t.Errorf("Details[line] = %v, want 12", err.Details["line"])
	}
	if err.Details["text"] != "gem frobnicate rake" {
		t.Errorf("Details[text] = %v", err.Details["text"])
	}
}

func TestErrorIs(t *testing.T) {
	a := errors.New(errors.ErrFileNotFound, "one message")
	b := errors.New(errors.ErrFileNotFound, "another message")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should match errors.Is")
	}

	c := errors.New(errors.ErrFileWrite, "different code")
	if stderrors.Is(a, c) {
		t.Error("errors with different codes should not match")
	}
}
