package infile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	target := MustNew("base.in")

	for _, code := range []string{"r", "requirements"} {
		ref, err := NewReference(code, target)
		require.NoError(t, err)
		assert.Equal(t, Requirements, ref.Type)
		assert.Same(t, target, ref.InFile)
	}
	for _, code := range []string{"c", "constraints"} {
		ref, err := NewReference(code, target)
		require.NoError(t, err)
		assert.Equal(t, Constraints, ref.Type)
	}

	_, err := NewReference("x", target)
	var typeErr *ReferenceTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, `invalid reference type: "x"`, err.Error())
}

func TestReference_CopyAs(t *testing.T) {
	ref := Reference{Type: Requirements, InFile: MustNew("base.in")}

	copied := ref.CopyAs(Constraints)

	assert.Equal(t, Constraints, copied.Type)
	assert.Same(t, ref.InFile, copied.InFile)
	assert.Equal(t, Requirements, ref.Type)
}

func TestReference_Equal(t *testing.T) {
	ref := Reference{Type: Requirements, InFile: MustNew("base.in")}

	assert.True(t, ref.Equal(Reference{Type: Requirements, InFile: MustNew("./base.in")}))
	assert.False(t, ref.Equal(ref.CopyAs(Constraints)))
	assert.False(t, ref.Equal(Reference{Type: Requirements, InFile: MustNew("base.requirements.in")}))
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "-r base.txt", Reference{Type: Requirements, InFile: MustNew("base.in")}.String())
	assert.Equal(t, "-c dev.requirements.txt", Reference{Type: Constraints, InFile: MustNew("dev.requirements.in")}.String())
}

func TestReferenceType_Name(t *testing.T) {
	assert.Equal(t, "requirements", Requirements.Name())
	assert.Equal(t, "constraints", Constraints.Name())
}
