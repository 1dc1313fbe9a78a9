// Package layer turns the layer arguments given on the command line into
// concrete files inside, or outside, the input directory.
//
// An argument is either a path (it contains a separator or is `.`/`..`), a
// full file name such as `dev.requirements.in`, or a bare stem such as
// `dev`. A bare stem is resolved by probing the input directory.
package layer

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/un-def/ptl/internal/fsutil"
)

// Type is the kind of file a layer argument points at.
type Type string

const (
	// InFile is a `.in` source layer.
	InFile Type = "infile"
	// Lock is a compiled `.txt` layer.
	Lock Type = "lock"
)

const requirementsSuffix = ".requirements"

var nameRegex = regexp.MustCompile(`^(\w[\w.-]*?)(\.requirements)?(\.in|\.txt)?$`)

// Extension returns the file extension of the type.
func (t Type) Extension() string {
	switch t {
	case InFile:
		return ".in"
	case Lock:
		return ".txt"
	}
	panic(fmt.Sprintf("layer: unknown type %q", string(t)))
}

func typeFromExtension(ext string) Type {
	if ext == ".txt" {
		return Lock
	}
	return InFile
}

// Options control how New resolves an argument.
type Options struct {
	// Type is used when the argument carries no extension.
	Type Type
	// InputDir is where names and bare stems are looked up.
	InputDir string
	// CheckExists makes New fail when the resolved file is missing or is
	// not a regular file.
	CheckExists bool
}

// Layer is a resolved layer argument.
type Layer struct {
	Type                  Type
	Name                  string
	Path                  string
	Stem                  string
	HasRequirementsSuffix bool
}

// New resolves a layer argument.
//
// The extension, when present, decides the type and opts.Type is ignored.
// A path is resolved against the working directory and opts.InputDir is
// ignored.
func New(nameOrPath string, opts Options) (*Layer, error) {
	isPath := fsutil.IsPath(nameOrPath)
	name := nameOrPath
	if isPath {
		name = filepath.Base(nameOrPath)
	}

	m := nameRegex.FindStringSubmatch(name)
	if m == nil {
		return nil, &NameError{Reason: "invalid format", Name: name}
	}
	stem, suffix, ext := m[1], m[2], m[3]

	l := &Layer{Stem: stem}
	isBareStem := false
	switch {
	case ext != "":
		l.Name = name
		l.HasRequirementsSuffix = suffix != ""
	case isPath || suffix != "":
		return nil, &NameError{Reason: "extension required", Name: name}
	default:
		isBareStem = true
	}

	switch {
	case ext != "":
		l.Type = typeFromExtension(ext)
	case opts.Type != "":
		l.Type = opts.Type
		ext = opts.Type.Extension()
	default:
		return nil, &NameError{Reason: "cannot infer type", Name: name}
	}

	if isPath {
		path, err := filepath.Abs(nameOrPath)
		if err != nil {
			return nil, err
		}
		if opts.CheckExists {
			if err := checkExists(path); err != nil {
				return nil, err
			}
		}
		l.Path = path
		return l, nil
	}

	if opts.InputDir == "" {
		return nil, &FileError{Message: fmt.Sprintf("cannot locate layer file without input directory: %s", name)}
	}
	inputDir, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(inputDir, name)
	if isBareStem {
		found := false
		for _, c := range candidates(stem, l.Type) {
			candidate := filepath.Join(inputDir, c.name)
			if state, _ := fsutil.StatFile(candidate); state != fsutil.RegularFile {
				continue
			}
			l.Name = replaceExtension(c.name, ext)
			l.HasRequirementsSuffix = c.suffixed
			path = filepath.Join(inputDir, l.Name)
			found = true
			break
		}
		if !found {
			return nil, &FileError{Message: fmt.Sprintf("%s does not exist", stem)}
		}
	}

	if opts.CheckExists {
		if err := checkExists(path); err != nil {
			return nil, err
		}
	}
	l.Path = path
	return l, nil
}

type candidate struct {
	name     string
	suffixed bool
}

// candidates lists the file names probed for a bare stem, most specific
// first. A lock layer may be located by its source file, which lets a
// missing lock be reported later by the caller.
func candidates(stem string, typ Type) []candidate {
	ext := typ.Extension()
	out := []candidate{
		{name: stem + requirementsSuffix + ext, suffixed: true},
		{name: stem + ext},
	}
	if typ == Lock {
		inExt := InFile.Extension()
		out = append(out,
			candidate{name: stem + requirementsSuffix + inExt, suffixed: true},
			candidate{name: stem + inExt},
		)
	}
	return out
}

func replaceExtension(name, ext string) string {
	return name[:len(name)-len(filepath.Ext(name))] + ext
}

func checkExists(path string) error {
	state, err := fsutil.StatFile(path)
	switch {
	case err != nil:
		return err
	case state == fsutil.Missing:
		return &FileError{Message: fmt.Sprintf("%s does not exist", path)}
	case state == fsutil.NotRegularFile:
		return &FileError{Message: fmt.Sprintf("%s is not a file", path)}
	}
	return nil
}

func (l *Layer) String() string { return l.Name }

// Equal compares layers by their resolved path.
func (l *Layer) Equal(other *Layer) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Path == other.Path
}

// ValidateOptions extend Options with a type check.
type ValidateOptions struct {
	Options
	// CheckType makes Validate fail when a layer resolves to a type other
	// than Options.Type. It requires Options.Type to be set.
	CheckType bool
}

// Validate resolves every argument in order.
func Validate(names []string, opts ValidateOptions) ([]*Layer, error) {
	if opts.CheckType && opts.Type == "" {
		panic("layer: CheckType requires Type")
	}
	layers := make([]*Layer, 0, len(names))
	for _, name := range names {
		l, err := New(name, opts.Options)
		if err != nil {
			return nil, err
		}
		if opts.CheckType && l.Type != opts.Type {
			return nil, &TypeError{Layer: l.Name, Expected: opts.Type, Actual: l.Type}
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// Stems returns the stems of the layers, in order.
func Stems(layers []*Layer) []string {
	stems := make([]string, len(layers))
	for i, l := range layers {
		stems[i] = l.Stem
	}
	return stems
}
