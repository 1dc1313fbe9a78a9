package infile

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/un-def/ptl/internal/fsutil"
)

var (
	inlineCommentRegex = regexp.MustCompile(`\s+#`)
	referenceRegex     = regexp.MustCompile(`^-([rc])\s*([\w.-]+?)(?:\.requirements)?(?:\.in|\.txt)?$`)
)

// ReadInFiles parses every `*.in` file directly inside dir and links the
// references between them. The result is ordered by file name and every
// node in it is sealed. An empty directory yields an empty slice.
func ReadInFiles(dir string) ([]*InFile, error) {
	paths, err := fsutil.FindFilesByExtension(dir, Extension)
	if err != nil {
		return nil, &InputDirectoryError{Message: err.Error()}
	}

	infiles := make([]*InFile, 0, len(paths))
	byStem := make(map[string]*InFile, len(paths))
	for _, path := range paths {
		f, err := New(path)
		if err != nil {
			return nil, err
		}
		if other, ok := byStem[f.stem]; ok {
			return nil, &NameCollisionError{First: other.originalName, Second: f.originalName}
		}
		byStem[f.stem] = f
		infiles = append(infiles, f)
	}

	for i, f := range infiles {
		if err := parseFile(paths[i], f, byStem); err != nil {
			return nil, err
		}
	}
	for _, f := range infiles {
		f.Seal()
	}
	return infiles, nil
}

func parseFile(path string, f *InFile, byStem map[string]*InFile) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := parseLine(scanner.Text(), f, byStem); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// parseLine handles one line of an input file. Comments start at `#` only
// when it opens the line or follows whitespace, so URL fragments survive.
func parseLine(line string, f *InFile, byStem map[string]*InFile) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if loc := inlineCommentRegex.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}

	m := referenceRegex.FindStringSubmatch(line)
	if m == nil {
		f.AddDependency(line)
		return nil
	}
	typ, stem := ReferenceType(m[1]), m[2]
	target, ok := byStem[stem]
	if !ok {
		return &UnknownReferenceError{InFile: f.originalName, Stem: stem}
	}
	f.AddReference(Reference{Type: typ, InFile: target})
	return nil
}
