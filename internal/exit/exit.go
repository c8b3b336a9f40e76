package exit

import (
	"fmt"
	"io"
	"os"
)

const (
	// CodeSuccess is returned when the query ran and its result was printed.
	CodeSuccess = 0
	// CodeFailure is returned when the query could not run.
	CodeFailure = 1
	// CodeUsage is returned when the command line is invalid.
	CodeUsage = 2
)

// Result describes how seqq terminates: what to print, where, and with which exit code.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message to the configured output.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success prints to stdout and exits with CodeSuccess.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Usage prints to stderr and exits with CodeUsage.
func Usage(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf(format, a...),
	}
}

// Failure prints err to stderr and exits with CodeFailure.
func Failure(err error) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeFailure,
		Message:  fmt.Sprintf("Error: %v\n", err),
	}
}
