package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/un-def/ptl/internal/app"
)

// Version is reported by `ptl --version`. It is set at link time.
var Version = "dev"

// Exit codes.
const (
	CodeError = 1
	CodeUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Runner executes a parsed command. *app.App implements it.
type Runner interface {
	Run(ctx context.Context, opts app.Options) error
}

// Execute parses args and runs the selected command. Help and version
// output go to stdout. Every failure is returned as an *ExitError; errors
// the runner has already logged carry no message.
func Execute(ctx context.Context, runner Runner, stdout, stderr io.Writer, args []string) error {
	root := NewRootCommand(runner)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(splitArgs(root, args))

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	if cmd == nil {
		cmd = root
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var reported *app.ReportedError
	if errors.As(err, &reported) {
		return &ExitError{Code: CodeError}
	}
	return &ExitError{
		Code:    CodeUsage,
		Message: fmt.Sprintf("Error: %s\nRun '%s --help' for usage.", err, cmd.CommandPath()),
	}
}
