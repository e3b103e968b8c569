// Package errors provides sentinel errors, structured error details and exit
// codes for the mdnew CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. Every failure the CLI reports maps to ExitGeneralError.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input such as a malformed project name.
	ErrValidation = errors.New("validation error")

	// ErrExists indicates the generation target already exists.
	ErrExists = errors.New("already exists")

	// ErrPermission indicates a path cannot be written.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a directory, file or binary was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewExistsError creates an error for a target that is already present.
func NewExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrExists,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message, location, hint string) error {
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrPermission,
	}
}

// ExitError carries a process exit code up to main.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the given exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Code: code, Err: err}
}
