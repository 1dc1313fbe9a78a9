package layer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

// chdir changes into a fresh temp dir and returns its resolved path.
func chdir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)
	return dir
}

func TestNew(t *testing.T) {
	t.Run("relative path", func(t *testing.T) {
		dir := chdir(t)
		createFile(t, dir, "main.in")

		l, err := New("./main.in", Options{CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, &Layer{
			Type: InFile,
			Name: "main.in",
			Path: filepath.Join(dir, "main.in"),
			Stem: "main",
		}, l)
	})

	t.Run("absolute path", func(t *testing.T) {
		path := createFile(t, t.TempDir(), "main.requirements.txt")

		l, err := New(path, Options{CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, Lock, l.Type)
		assert.Equal(t, "main.requirements.txt", l.Name)
		assert.Equal(t, path, l.Path)
		assert.Equal(t, "main", l.Stem)
		assert.True(t, l.HasRequirementsSuffix)
	})

	t.Run("name", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.requirements.in")

		l, err := New("dev.requirements.in", Options{InputDir: dir, CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, InFile, l.Type)
		assert.Equal(t, "dev.requirements.in", l.Name)
		assert.Equal(t, filepath.Join(dir, "dev.requirements.in"), l.Path)
		assert.True(t, l.HasRequirementsSuffix)
	})

	t.Run("stem without suffix", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.in")

		l, err := New("dev", Options{Type: InFile, InputDir: dir, CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, "dev.in", l.Name)
		assert.Equal(t, filepath.Join(dir, "dev.in"), l.Path)
		assert.False(t, l.HasRequirementsSuffix)
	})

	t.Run("stem with suffix", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.requirements.txt")

		l, err := New("dev", Options{Type: Lock, InputDir: dir, CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, Lock, l.Type)
		assert.Equal(t, "dev.requirements.txt", l.Name)
		assert.Equal(t, ".txt", l.Type.Extension())
		assert.True(t, l.HasRequirementsSuffix)
	})

	t.Run("lock stem located by its source file", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.requirements.in")

		l, err := New("dev", Options{Type: Lock, InputDir: dir})
		require.NoError(t, err)

		assert.Equal(t, "dev.requirements.txt", l.Name)
		assert.Equal(t, filepath.Join(dir, "dev.requirements.txt"), l.Path)
		assert.True(t, l.HasRequirementsSuffix)
	})

	t.Run("suffixed candidate wins", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "dev.in")
		createFile(t, dir, "dev.requirements.in")

		l, err := New("dev", Options{Type: InFile, InputDir: dir})
		require.NoError(t, err)

		assert.Equal(t, "dev.requirements.in", l.Name)
	})

	t.Run("type ignored if inferred", func(t *testing.T) {
		dir := t.TempDir()
		createFile(t, dir, "main.in")

		l, err := New("main.in", Options{Type: Lock, InputDir: dir})
		require.NoError(t, err)

		assert.Equal(t, InFile, l.Type)
	})

	t.Run("input dir ignored if path", func(t *testing.T) {
		dir := chdir(t)
		createFile(t, dir, "main.in")

		l, err := New("./main.in", Options{InputDir: t.TempDir(), CheckExists: true})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "main.in"), l.Path)
	})
}

func TestNew_NameError(t *testing.T) {
	testCases := []struct {
		nameOrPath string
		opts       Options
		expected   string
	}{
		{nameOrPath: "/path/to/!main.in", expected: "invalid format: !main.in"},
		{nameOrPath: ".in", expected: "invalid format: .in"},
		{nameOrPath: ".", expected: "invalid format: ."},
		{nameOrPath: "", expected: "invalid format: "},
		{nameOrPath: "/path/to/main", expected: "extension required: main"},
		{nameOrPath: "./dev.requirements", expected: "extension required: dev.requirements"},
		{nameOrPath: "dev.requirements", expected: "extension required: dev.requirements"},
		{nameOrPath: "test", expected: "cannot infer type: test"},
	}

	for _, tc := range testCases {
		t.Run(tc.nameOrPath, func(t *testing.T) {
			_, err := New(tc.nameOrPath, tc.opts)

			var nameErr *NameError
			require.ErrorAs(t, err, &nameErr)
			assert.Equal(t, tc.expected, err.Error())
			assert.Equal(t, "LayerNameError", nameErr.Kind())
		})
	}
}

func TestNew_FileError(t *testing.T) {
	t.Run("cannot locate", func(t *testing.T) {
		_, err := New("test", Options{Type: InFile})

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, "cannot locate layer file without input directory: test", err.Error())
	})

	t.Run("path does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist.in")

		_, err := New(path, Options{CheckExists: true})

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, path+" does not exist", err.Error())
	})

	t.Run("name does not exist", func(t *testing.T) {
		dir := t.TempDir()

		_, err := New("does-not-exist.in", Options{InputDir: dir, CheckExists: true})

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, filepath.Join(dir, "does-not-exist.in")+" does not exist", err.Error())
	})

	t.Run("stem does not exist", func(t *testing.T) {
		_, err := New("dev", Options{Type: InFile, InputDir: t.TempDir()})

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, "dev does not exist", err.Error())
	})

	t.Run("not a file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "is-dir.in"), 0o755))

		_, err := New(filepath.Join(dir, "is-dir.in"), Options{CheckExists: true})
		require.ErrorContains(t, err, "is not a file")

		_, err = New("is-dir.in", Options{InputDir: dir, CheckExists: true})
		require.ErrorContains(t, err, "is not a file")
	})

	t.Run("missing file allowed without check", func(t *testing.T) {
		dir := t.TempDir()

		l, err := New("main.txt", Options{InputDir: dir})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "main.txt"), l.Path)
	})
}

func TestLayer_Equal(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "main.in")
	createFile(t, dir, "main.txt")
	createFile(t, dir, "main.requirements.in")
	other := t.TempDir()
	createFile(t, other, "main.in")

	mustNew := func(nameOrPath string, opts Options) *Layer {
		l, err := New(nameOrPath, opts)
		require.NoError(t, err)
		return l
	}

	byName := mustNew("main.in", Options{InputDir: dir})
	assert.True(t, byName.Equal(mustNew(filepath.Join(dir, "main.in"), Options{})))
	assert.False(t, byName.Equal(mustNew("main.txt", Options{InputDir: dir})))
	assert.False(t, byName.Equal(mustNew("main.requirements.in", Options{InputDir: dir})))
	assert.False(t, byName.Equal(mustNew(filepath.Join(other, "main.in"), Options{})))
	assert.False(t, byName.Equal(nil))
}
