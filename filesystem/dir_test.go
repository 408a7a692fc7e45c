package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/staticd"
	"github.com/nlowe/staticd/filesystem"
)

func newDir(t *testing.T) (*filesystem.Dir, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "foo.txt"), []byte("Some text."), 0o644))

	dir, err := filesystem.NewDir(root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dir.Close() })

	return dir, root
}

func TestDir_Resolve(t *testing.T) {
	dir, root := newDir(t)

	t.Run("file", func(t *testing.T) {
		res, err := dir.Resolve("foo.txt")
		require.NoError(t, err)

		assert.Equal(t, "foo.txt", res.Name())
		assert.True(t, res.Exists())
		assert.Equal(t, int64(10), res.Length())
		assert.False(t, res.ModTime().IsZero())

		in, err := res.Open()
		require.NoError(t, err)
		defer func() { _ = in.Close() }()

		data, err := io.ReadAll(in)
		require.NoError(t, err)
		assert.Equal(t, "Some text.", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := dir.Resolve("nope.txt")
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := dir.Resolve("js")
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := dir.Resolve("")
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})

	t.Run("vanished after resolution", func(t *testing.T) {
		res, err := dir.Resolve("foo.txt")
		require.NoError(t, err)

		require.NoError(t, os.Remove(filepath.Join(root, "foo.txt")))
		t.Cleanup(func() {
			_ = os.WriteFile(filepath.Join(root, "foo.txt"), []byte("Some text."), 0o644)
		})

		_, err = res.Open()
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})
}

func TestDir_Contains(t *testing.T) {
	dir, _ := newDir(t)
	other, _ := newDir(t)

	res, err := dir.Resolve("foo.txt")
	require.NoError(t, err)

	assert.True(t, dir.Contains(res))
	assert.False(t, other.Contains(res))
}
