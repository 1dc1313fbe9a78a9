package providers

import (
	"fmt"
	"strings"
)

// ExecutableNotFoundError reports a tool executable that cannot be located.
type ExecutableNotFoundError struct {
	Message string
}

func (e *ExecutableNotFoundError) Error() string { return e.Message }

func (e *ExecutableNotFoundError) Kind() string { return "ExecutableNotFound" }

// VersionCheckError reports a tool that failed `--version`.
type VersionCheckError struct {
	Err error
}

func (e *VersionCheckError) Error() string { return e.Err.Error() }

func (e *VersionCheckError) Unwrap() error { return e.Err }

func (e *VersionCheckError) Kind() string { return "ToolVersionCheckFailed" }

// ToolNotFoundError reports that no registered provider offers a working
// command line for the tool.
type ToolNotFoundError struct {
	Tool       Tool
	Candidates []string
}

func (e *ToolNotFoundError) Error() string {
	quoted := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		quoted[i] = "`" + c + "`"
	}
	return fmt.Sprintf("%s tool not found, candidates tried: %s", e.Tool, strings.Join(quoted, ", "))
}

func (e *ToolNotFoundError) Kind() string { return "ToolNotFound" }
