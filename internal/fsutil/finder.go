// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtension lists the regular files directly inside dir whose
// names end with the specified extension. Subdirectories are not searched.
// The returned paths are joined with dir and sorted by file name.
func FindFilesByExtension(dir string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// HasFileWithExtension reports whether dir directly contains at least one
// file with the extension. Unreadable directories count as empty.
func HasFileWithExtension(dir string, extension string) bool {
	files, err := FindFilesByExtension(dir, extension)
	return err == nil && len(files) > 0
}

// FileState describes what, if anything, exists at a path.
type FileState int

const (
	Missing FileState = iota
	RegularFile
	NotRegularFile
)

// StatFile classifies path. Errors other than "does not exist" are returned.
func StatFile(path string) (FileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Missing, nil
		}
		return Missing, err
	}
	if !info.Mode().IsRegular() {
		return NotRegularFile, nil
	}
	return RegularFile, nil
}
