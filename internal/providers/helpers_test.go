package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/localexecutor"
)

const dummyScript = `#!/bin/sh
if [ $# -lt 1 ]; then
    echo "usage: dummy COMMAND" >&2
    exit 1
fi
case "$1" in
    compile|sync)
        ;;
    *)
        echo "unknown tool $1"
        exit 2
esac
if [ "$2" = '--version' ]; then
    echo "dummy $1 version 0.0.1"
else
    echo "I'm a dummy"
    exit 3
fi
`

func createExecutable(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(dummyScript), 0o755))
	return path
}

// overridePath points PATH at a fresh bin directory and returns it.
func overridePath(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(resolvedTempDir(t), "bin")
	require.NoError(t, os.Mkdir(bin, 0o755))
	t.Setenv("PATH", bin)
	return bin
}

func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := resolvedTempDir(t)
	t.Chdir(dir)
	return dir
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func newExecutor() *localexecutor.Executor {
	return localexecutor.New(nil, nil)
}
