package layer

import "fmt"

// NameError reports a layer argument that cannot be parsed.
type NameError struct {
	Reason string
	Name   string
}

func (e *NameError) Error() string { return fmt.Sprintf("%s: %s", e.Reason, e.Name) }

func (e *NameError) Kind() string { return "LayerNameError" }

// FileError reports a layer file that cannot be located or is not a
// regular file.
type FileError struct {
	Message string
}

func (e *FileError) Error() string { return e.Message }

func (e *FileError) Kind() string { return "LayerFileError" }

// TypeError reports a layer of the wrong type.
type TypeError struct {
	Layer    string
	Expected Type
	Actual   Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s expected, got %s", e.Layer, e.Expected, e.Actual)
}

func (e *TypeError) Kind() string { return "LayerTypeError" }
