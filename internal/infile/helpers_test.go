package infile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// createFile writes the lines, newline-terminated, to name inside dir.
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

func stems(infiles []*InFile) []string {
	out := make([]string, len(infiles))
	for i, f := range infiles {
		out[i] = f.Stem()
	}
	return out
}

func findByStem(t *testing.T, infiles []*InFile, stem string) *InFile {
	t.Helper()
	for _, f := range infiles {
		if f.Stem() == stem {
			return f
		}
	}
	t.Fatalf("%s not found in %v", stem, stems(infiles))
	return nil
}
