package infile

import "fmt"

// ReferenceType is the kind of edge between two layers.
type ReferenceType string

const (
	// Requirements pulls every dependency of the target layer in (`-r`).
	Requirements ReferenceType = "r"
	// Constraints only pins versions of the target layer (`-c`).
	Constraints ReferenceType = "c"
)

// ParseReferenceType accepts the single-letter directive codes as well as
// the long names.
func ParseReferenceType(value string) (ReferenceType, error) {
	switch value {
	case "r", "requirements":
		return Requirements, nil
	case "c", "constraints":
		return Constraints, nil
	}
	return "", &ReferenceTypeError{Value: value}
}

// Name returns the long, human-readable name of the type.
func (t ReferenceType) Name() string {
	switch t {
	case Requirements:
		return "requirements"
	case Constraints:
		return "constraints"
	}
	return string(t)
}

// Reference is a typed pointer from one layer to another. It is a value
// type: copies never share state.
type Reference struct {
	Type   ReferenceType
	InFile *InFile
}

// NewReference validates the type code and builds a reference to target.
func NewReference(typ string, target *InFile) (Reference, error) {
	t, err := ParseReferenceType(typ)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Type: t, InFile: target}, nil
}

// CopyAs returns a reference to the same layer with a different type.
func (r Reference) CopyAs(typ ReferenceType) Reference {
	return Reference{Type: typ, InFile: r.InFile}
}

// Equal reports whether both references have the same type and point to the
// same layer.
func (r Reference) Equal(other Reference) bool {
	if r.Type != other.Type {
		return false
	}
	return r.InFile.Equal(other.InFile)
}

// String renders the directive line without the trailing newline,
// e.g. `-c base.txt`.
func (r Reference) String() string {
	return fmt.Sprintf("-%s %s", r.Type, r.InFile.OutputName())
}
