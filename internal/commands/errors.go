package commands

import (
	"fmt"
	"strings"
)

// CompileError reports layers whose parents have not been compiled, or a
// failing compile tool.
type CompileError struct {
	Missing []string
	Err     error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("not all parent layers are compiled, missing: %s", strings.Join(e.Missing, ", "))
}

func (e *CompileError) Unwrap() error { return e.Err }

func (e *CompileError) Kind() string { return "CompileError" }

// SyncError reports missing lock files or a failing sync tool.
type SyncError struct {
	Missing []string
	Err     error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("not all files are compiled, missing: %s", strings.Join(e.Missing, ", "))
}

func (e *SyncError) Unwrap() error { return e.Err }

func (e *SyncError) Kind() string { return "SyncError" }
