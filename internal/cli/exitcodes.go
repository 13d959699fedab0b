package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/pastel/internal/api"
	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: backend errors, network errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown todo or category ids, 404 from the backend.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: responses or config that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty or too long todo text, bad or duplicate category names.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command.
// main unwraps it and exits with Code.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so the process exits with code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for err. Errors without an explicit code are
// classified: validation -> ExitValidation, missing resources -> ExitNotFound,
// anything else -> ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case validation.IsValidationError(err):
		return ExitValidation
	case app.IsNotFound(err), api.IsHTTPStatus(err, http.StatusNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code printed in JSON error output
func ErrorCode(err error) string {
	if code := validation.CodeOf(err); code != "" {
		return "VALIDATION_" + string(code)
	}
	switch ExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	if api.IsNetwork(err) {
		return "NETWORK_ERROR"
	}
	if api.IsHTTPError(err) {
		return "BACKEND_ERROR"
	}
	return "ERROR"
}
