package errors

import "fmt"

// ExecutionError indicates the scanner executable could not be located or started.
// It is always fatal: no classification or reporting happens after it.
type ExecutionError struct {
	Bin string
	Err error
}

// Error implements the error interface for ExecutionError.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("vulture executable not found: %s", e.Bin)
}

// Unwrap exposes the underlying start failure.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError instance.
func NewExecutionError(bin string, err error) error {
	return &ExecutionError{
		Bin: bin,
		Err: err,
	}
}

// ScanFailure indicates the scanner ran but returned an exit code outside the
// accepted success set. It carries the captured stderr as diagnostic text.
type ScanFailure struct {
	ExitCode int
	Stderr   string
}

// Error implements the error interface for ScanFailure.
func (e *ScanFailure) Error() string {
	return fmt.Sprintf("vulture failed with exit code %d:\n%s", e.ExitCode, e.Stderr)
}

// NewScanFailure creates a new ScanFailure instance.
func NewScanFailure(exitCode int, stderr string) error {
	return &ScanFailure{
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}

// CommandError represents a command outcome that must map to a specific process
// exit code, storing the message to surface on stderr.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError instance encapsulating the cause and the exit code.
// A nil cause produces a silent error: the exit code is applied without printing a diagnostic.
func NewCommandError(err error, code int) *CommandError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &CommandError{
		ExitCode:    code,
		CommonError: message,
	}
}
