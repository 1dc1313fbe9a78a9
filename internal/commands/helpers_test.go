package commands

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/un-def/ptl/internal/ctxlog"
)

// recordingExecutor records every command line it is asked to run, together
// with the content of the generated input file at call time.
type recordingExecutor struct {
	calls    [][]string
	contents []string
	err      error
}

func (e *recordingExecutor) Run(_ context.Context, argv []string) error {
	e.calls = append(e.calls, slices.Clone(argv))
	content := ""
	for _, arg := range argv {
		if strings.HasSuffix(arg, ".ptl.in") || strings.HasSuffix(arg, ".ptl.requirements.in") {
			if data, err := os.ReadFile(arg); err == nil {
				content = string(data)
			}
		}
	}
	e.contents = append(e.contents, content)
	return e.err
}

func (e *recordingExecutor) Output(_ context.Context, argv []string) (string, error) {
	e.calls = append(e.calls, slices.Clone(argv))
	return "", e.err
}

func createFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// inputDir returns a fresh, symlink-free input directory.
func inputDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}
