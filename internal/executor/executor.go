// Package executor defines how external tools are invoked. The concrete
// subprocess implementation lives in localexecutor; tests substitute
// recording fakes.
package executor

import (
	"context"
	"fmt"
	"strings"
)

// Executor runs an external command line.
type Executor interface {
	// Run executes argv with the executor's standard streams attached.
	Run(ctx context.Context, argv []string) error
	// Output executes argv and returns its combined stdout and stderr.
	Output(ctx context.Context, argv []string) (string, error)
}

// ExitError reports a command that exited with a non-zero status.
type ExitError struct {
	Argv   []string
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s returned non-zero exit status %d", strings.Join(e.Argv, " "), e.Code)
	if out := strings.TrimRight(e.Output, "\n"); out != "" {
		msg += "\n" + out
	}
	return msg
}
