package infile

import (
	"fmt"
	"strings"
)

// InputDirectoryError reports a missing or unusable input directory, or one
// that holds no layer files.
type InputDirectoryError struct {
	Message string
}

func (e *InputDirectoryError) Error() string { return e.Message }

// Kind names the error kind for user-facing reports.
func (e *InputDirectoryError) Kind() string { return "InputDirectoryError" }

// NameError reports a file name that is not a valid input layer name.
type NameError struct {
	Name string
}

func (e *NameError) Error() string { return e.Name }

func (e *NameError) Kind() string { return "InFileNameError" }

// NameCollisionError reports two files in one directory that normalize to
// the same layer stem, e.g. main.in and main.requirements.in.
type NameCollisionError struct {
	First  string
	Second string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("conflicting names: %s, %s", e.First, e.Second)
}

func (e *NameCollisionError) Kind() string { return "NameCollisionError" }

// UnknownReferenceError reports a reference directive whose stem does not
// match any parsed layer.
type UnknownReferenceError struct {
	InFile string
	Stem   string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.InFile, e.Stem)
}

func (e *UnknownReferenceError) Kind() string { return "UnknownReference" }

// CircularReferenceError carries the layers left over after every acyclic
// part of the graph has been ordered. All of them sit on, or depend on, a cycle.
type CircularReferenceError struct {
	InFiles []*InFile
}

func (e *CircularReferenceError) Error() string {
	names := make([]string, len(e.InFiles))
	for i, f := range e.InFiles {
		names[i] = f.OriginalName()
	}
	return strings.Join(names, ", ")
}

func (e *CircularReferenceError) Kind() string { return "CircularReference" }

// ReferenceTypeError reports an unrecognized reference type code.
type ReferenceTypeError struct {
	Value string
}

func (e *ReferenceTypeError) Error() string {
	return fmt.Sprintf("invalid reference type: %q", e.Value)
}

func (e *ReferenceTypeError) Kind() string { return "ValidationError" }

// UnknownLayerError reports a selected layer stem with no parsed layer file.
type UnknownLayerError struct {
	Stem string
}

func (e *UnknownLayerError) Error() string { return fmt.Sprintf("%s does not exist", e.Stem) }

func (e *UnknownLayerError) Kind() string { return "LayerFileError" }
