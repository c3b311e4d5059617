package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Spec source errors
	ErrSpecQuery  ErrorCode = "SPEC_QUERY"
	ErrSpecDecode ErrorCode = "SPEC_DECODE"

	// Script errors
	ErrParse             ErrorCode = "PARSE_ERROR"
	ErrOverwriteDeclined ErrorCode = "OVERWRITE_DECLINED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Execution errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
	ErrUserAbort      ErrorCode = "USER_ABORT"
)

// BinfileError represents a structured error with code and details
type BinfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BinfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BinfileError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BinfileError) Is(target error) bool {
	var targetErr *BinfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BinfileError with the given code and message
func New(code ErrorCode, message string) *BinfileError {
	return &BinfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BinfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BinfileError {
	return &BinfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BinfileError
func Wrap(err error, code ErrorCode, message string) *BinfileError {
	if err == nil {
		return nil
	}
	return &BinfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BinfileError {
	if err == nil {
		return nil
	}
	return &BinfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining
func (e *BinfileError) WithDetail(key string, value interface{}) *BinfileError {
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that did not originate here.
func GetCode(err error) ErrorCode {
	var binErr *BinfileError
	if errors.As(err, &binErr) {
		return binErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var binErr *BinfileError
	if errors.As(err, &binErr) {
		return binErr.Code == code
	}
	return false
}
