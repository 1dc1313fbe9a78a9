package fsutil

import (
	"path/filepath"
	"strings"
)

// IsPath reports whether value looks like a file system path rather than a
// bare name: it contains a path separator or is one of the special `.` and
// `..` entries.
func IsPath(value string) bool {
	if value == "." || value == ".." {
		return true
	}
	return strings.ContainsRune(value, '/') || strings.ContainsRune(value, filepath.Separator)
}

// TryRelativeTo returns path relative to base when path lies inside base,
// and path unchanged otherwise.
func TryRelativeTo(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
