package layer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(layers []*Layer) []string {
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.Path
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Run("mixed inputs without type check", func(t *testing.T) {
		cwd := chdir(t)
		dir := t.TempDir()
		createFile(t, cwd, "tmp.in")
		createFile(t, dir, "main.txt")
		createFile(t, dir, "dev.in")

		layers, err := Validate([]string{"./tmp.in", "main.txt", "dev"}, ValidateOptions{
			Options: Options{Type: InFile, InputDir: dir, CheckExists: true},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(cwd, "tmp.in"),
			filepath.Join(dir, "main.txt"),
			filepath.Join(dir, "dev.in"),
		}, paths(layers))
		assert.Equal(t, []string{"tmp", "main", "dev"}, Stems(layers))
	})

	t.Run("type check", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "main.in")
		createFile(t, dir, "dev.in")

		layers, err := Validate([]string{filepath.Join(dir, "main.in"), "dev"}, ValidateOptions{
			Options:   Options{Type: InFile, InputDir: dir, CheckExists: true},
			CheckType: true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"main.in", "dev.in"}, []string{layers[0].String(), layers[1].String()})
	})

	t.Run("without existence check", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.requirements.in")

		layers, err := Validate([]string{filepath.Join(dir, "main.txt"), "dev"}, ValidateOptions{
			Options: Options{Type: Lock, InputDir: dir},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(dir, "main.txt"),
			filepath.Join(dir, "dev.requirements.txt"),
		}, paths(layers))
	})

	t.Run("empty", func(t *testing.T) {
		layers, err := Validate(nil, ValidateOptions{})
		require.NoError(t, err)
		assert.Empty(t, layers)
	})
}

func TestValidate_Errors(t *testing.T) {
	t.Run("unexpected type", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "main.in")
		createFile(t, dir, "dev.txt")

		_, err := Validate([]string{"main.in", "dev.txt"}, ValidateOptions{
			Options:   Options{Type: InFile, InputDir: dir, CheckExists: true},
			CheckType: true,
		})

		var typeErr *TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "dev.txt: infile expected, got lock", err.Error())
		assert.Equal(t, "LayerTypeError", typeErr.Kind())
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "main.in")

		_, err := Validate([]string{"main.in", "dev.txt"}, ValidateOptions{
			Options: Options{InputDir: dir, CheckExists: true},
		})

		assert.EqualError(t, err, filepath.Join(dir, "dev.txt")+" does not exist")
	})

	t.Run("cannot infer type", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "main.in")
		createFile(t, dir, "dev.in")

		_, err := Validate([]string{"main.in", "dev"}, ValidateOptions{
			Options: Options{InputDir: dir, CheckExists: true},
		})

		assert.EqualError(t, err, "cannot infer type: dev")
	})

	t.Run("cannot locate", func(t *testing.T) {
		cwd := chdir(t)
		createFile(t, cwd, "main.in")
		createFile(t, cwd, "dev.in")

		_, err := Validate([]string{"./main.in", "dev.in"}, ValidateOptions{
			Options: Options{CheckExists: true},
		})

		assert.EqualError(t, err, "cannot locate layer file without input directory: dev.in")
	})

	t.Run("check type requires type", func(t *testing.T) {
		assert.PanicsWithValue(t, "layer: CheckType requires Type", func() {
			_, _ = Validate(nil, ValidateOptions{CheckType: true})
		})
	})
}
