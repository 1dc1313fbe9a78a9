package infile

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

const (
	// Extension is the extension of every input layer file.
	Extension = ".in"
	// OutputExtension is the extension of compiled (locked) layer files.
	OutputExtension = ".txt"
	// RequirementsSuffix is the optional infix placed right before the extension.
	RequirementsSuffix = ".requirements"

	generatedInfix = ".ptl"
)

var nameRegex = regexp.MustCompile(`^(\w[\w.-]*?)(\.requirements)?\.in$`)

// InFile is one input layer. It owns, in declaration order, its outgoing
// references and its free-text dependency lines.
type InFile struct {
	stem          string
	suffix        string
	originalName  string
	generatedName string
	outputName    string

	references   []Reference
	dependencies []string
	sealed       bool
}

// New derives the layer identity from a file name or path. Only the base
// name matters; the directory part is ignored.
func New(nameOrPath string) (*InFile, error) {
	name := filepath.Base(nameOrPath)
	m := nameRegex.FindStringSubmatch(name)
	if m == nil {
		return nil, &NameError{Name: name}
	}
	stem, suffix := m[1], m[2]
	return &InFile{
		stem:          stem,
		suffix:        suffix,
		originalName:  name,
		generatedName: stem + generatedInfix + suffix + Extension,
		outputName:    stem + suffix + OutputExtension,
	}, nil
}

// MustNew is like New but panics on an invalid name. Intended for tests and
// for names that are known to be valid.
func MustNew(nameOrPath string) *InFile {
	f, err := New(nameOrPath)
	if err != nil {
		panic(fmt.Sprintf("infile: %v", err))
	}
	return f
}

// Stem is the logical layer name: `base` for both base.in and base.requirements.in.
func (f *InFile) Stem() string { return f.stem }

// OriginalName is the file name on disk.
func (f *InFile) OriginalName() string { return f.originalName }

// GeneratedName is the name of the temporary file handed to the compile tool.
func (f *InFile) GeneratedName() string { return f.generatedName }

// OutputName is the name of the compiled lock file.
func (f *InFile) OutputName() string { return f.outputName }

// HasRequirementsSuffix reports whether the file name carries the
// `.requirements` infix.
func (f *InFile) HasRequirementsSuffix() bool { return f.suffix != "" }

func (f *InFile) String() string { return f.originalName }

// Equal compares layers by their original file name.
func (f *InFile) Equal(other *InFile) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.originalName == other.originalName
}

// AddReference appends a reference. Duplicates are kept.
func (f *InFile) AddReference(ref Reference) {
	f.mustBeOpen()
	f.references = append(f.references, ref)
}

// AddDependency appends a dependency line, trimmed of surrounding whitespace.
func (f *InFile) AddDependency(line string) {
	f.mustBeOpen()
	f.dependencies = append(f.dependencies, strings.TrimSpace(line))
}

// Seal freezes the node. Any later Add* call panics.
func (f *InFile) Seal() { f.sealed = true }

func (f *InFile) mustBeOpen() {
	if f.sealed {
		panic(fmt.Sprintf("infile: %s is sealed", f.originalName))
	}
}

// DirectReferences returns a copy of the node's own references.
func (f *InFile) DirectReferences() []Reference {
	return slices.Clone(f.references)
}

// Dependencies returns a copy of the node's dependency lines.
func (f *InFile) Dependencies() []string {
	return slices.Clone(f.dependencies)
}

// References iterates over the references of the layer. With recursive set,
// each reference is followed by the references of its target, depth first.
//
// When as is non-empty every yielded reference is re-typed to it. Otherwise
// types propagate: once a branch passes a constraints edge everything below
// it is yielded as constraints, while a requirements edge leaves descendants
// with their declared types.
//
// A target already on the current path is yielded but not descended into,
// so a cyclic graph cannot make the walk loop forever.
func (f *InFile) References(recursive bool, as ReferenceType) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		path := map[*InFile]struct{}{f: {}}
		f.walk(recursive, as, path, yield)
	}
}

// walk reports false once yield has asked to stop.
func (f *InFile) walk(recursive bool, forced ReferenceType, path map[*InFile]struct{}, yield func(Reference) bool) bool {
	for _, ref := range f.references {
		out := ref
		if forced != "" {
			out = ref.CopyAs(forced)
		}
		if !yield(out) {
			return false
		}
		if !recursive {
			continue
		}
		if _, onPath := path[ref.InFile]; onPath {
			continue
		}
		next := forced
		if next == "" && ref.Type == Constraints {
			next = Constraints
		}
		path[ref.InFile] = struct{}{}
		ok := ref.InFile.walk(true, next, path, yield)
		delete(path, ref.InFile)
		if !ok {
			return false
		}
	}
	return true
}

// Render returns the body handed to the resolver: every transitive
// reference on its own line, in traversal order, followed by the dependency
// lines. A non-empty referencesAs forces a single type on all references.
func (f *InFile) Render(referencesAs ReferenceType) string {
	var sb strings.Builder
	for ref := range f.References(true, "") {
		if referencesAs != "" {
			ref = ref.CopyAs(referencesAs)
		}
		sb.WriteString(ref.String())
		sb.WriteByte('\n')
	}
	for _, dep := range f.dependencies {
		sb.WriteString(dep)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered body to GeneratedName inside dir and returns
// the path of the written file.
func (f *InFile) WriteTo(dir string, referencesAs ReferenceType) (string, error) {
	path := filepath.Join(dir, f.generatedName)
	if err := os.WriteFile(path, []byte(f.Render(referencesAs)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WithTemporaryFile writes the rendered body like WriteTo, calls fn with the
// path and removes the file afterwards, including when fn fails or panics.
func (f *InFile) WithTemporaryFile(dir string, referencesAs ReferenceType, fn func(path string) error) (err error) {
	path, err := f.WriteTo(dir, referencesAs)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && err == nil {
			err = fmt.Errorf("removing %s: %w", path, rmErr)
		}
	}()
	return fn(path)
}
