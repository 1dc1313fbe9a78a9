package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/un-def/ptl/internal/executor"
	"github.com/un-def/ptl/internal/hcl"
)

// fakeExecutor answers version probes and records every run.
type fakeExecutor struct {
	probes [][]string
	calls  [][]string
	// broken names executables whose version probe fails.
	broken map[string]bool
	runErr error
}

func (e *fakeExecutor) Run(_ context.Context, argv []string) error {
	e.calls = append(e.calls, slices.Clone(argv))
	return e.runErr
}

func (e *fakeExecutor) Output(_ context.Context, argv []string) (string, error) {
	e.probes = append(e.probes, slices.Clone(argv))
	name := filepath.Base(argv[0])
	if e.broken[name] {
		return "", &executor.ExitError{Argv: argv, Code: 1, Output: "broken"}
	}
	return name + " 1.0.0\n", nil
}

type testEnv struct {
	t      *testing.T
	dir    string
	bin    string
	env    map[string]string
	exe    *fakeExecutor
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// newTestEnv changes into a fresh working directory with a `requirements`
// input directory and a PATH holding only the given executables.
func newTestEnv(t *testing.T, executables ...string) *testEnv {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)

	bin := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "requirements"), 0o755))
	require.NoError(t, os.Mkdir(bin, 0o755))
	for _, name := range executables {
		require.NoError(t, os.WriteFile(filepath.Join(bin, name), []byte("#!/bin/sh\n"), 0o755))
	}
	t.Setenv("PATH", bin)

	return &testEnv{
		t:   t,
		dir: dir,
		bin: bin,
		env: map[string]string{},
		exe: &fakeExecutor{broken: map[string]bool{}},
	}
}

func (e *testEnv) layer(name string, lines ...string) {
	e.t.Helper()
	e.file(filepath.Join("requirements", name), lines...)
}

func (e *testEnv) file(name string, lines ...string) {
	e.t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(e.t, os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0o644))
}

func (e *testEnv) app() *App {
	a := NewApp(&e.stdout, &e.stderr, hcl.NewLoader(), e.exe)
	a.colorize = false
	a.lookupEnv = func(key string) (string, bool) {
		value, ok := e.env[key]
		return value, ok
	}
	return a
}

func (e *testEnv) run(opts Options) error {
	return e.app().Run(context.Background(), opts)
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.bin, name)
}
