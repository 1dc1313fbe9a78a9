// Package localexecutor provides a concrete, subprocess-based implementation
// of the executor.Executor interface.
package localexecutor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/executor"
)

// Executor implements executor.Executor with os/exec.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
}

// New creates a local executor. Nil writers default to the process streams.
func New(stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{stdout: stdout, stderr: stderr}
}

var _ executor.Executor = (*Executor)(nil)

func (e *Executor) Run(ctx context.Context, argv []string) error {
	ctxlog.FromContext(ctx).Debug("Calling external command.", "argv", argv)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	return translate(argv, cmd.Run(), nil)
}

func (e *Executor) Output(ctx context.Context, argv []string) (string, error) {
	ctxlog.FromContext(ctx).Debug("Calling external command for output.", "argv", argv)
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := translate(argv, cmd.Run(), buf.Bytes())
	return buf.String(), err
}

func translate(argv []string, err error, output []byte) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &executor.ExitError{Argv: argv, Code: exitErr.ExitCode(), Output: string(output)}
	}
	return err
}
