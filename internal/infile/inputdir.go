package infile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/un-def/ptl/internal/fsutil"
)

// DefaultInputDir is tried first when no input directory is given.
const DefaultInputDir = "requirements"

// ResolveInputDir returns the absolute input directory. An explicit
// directory must exist and be a directory. Without one, `requirements` in
// the working directory is used if present, then the working directory
// itself if it holds any layer file.
func ResolveInputDir(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			if os.IsNotExist(err) {
				return "", &InputDirectoryError{Message: fmt.Sprintf("%s does not exist", explicit)}
			}
			return "", &InputDirectoryError{Message: err.Error()}
		}
		if !info.IsDir() {
			return "", &InputDirectoryError{Message: fmt.Sprintf("%s is not a directory", explicit)}
		}
		return filepath.Abs(explicit)
	}

	if info, err := os.Stat(DefaultInputDir); err == nil && info.IsDir() {
		return filepath.Abs(DefaultInputDir)
	}
	if fsutil.HasFileWithExtension(".", Extension) {
		return filepath.Abs(".")
	}
	return "", &InputDirectoryError{Message: "input directory not found"}
}
