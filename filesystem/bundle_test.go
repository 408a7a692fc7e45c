package filesystem_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/staticd"
	"github.com/nlowe/staticd/filesystem"
)

func TestBundle_Resolve(t *testing.T) {
	bundle := filesystem.NewBundle("assets", fstest.MapFS{
		"underscorejs/underscore.js": &fstest.MapFile{Data: []byte("var _ = {};")},
	})

	t.Run("file entry", func(t *testing.T) {
		res, err := bundle.Resolve("underscorejs/underscore.js")
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.Length())

		in, err := res.Open()
		require.NoError(t, err)
		defer func() { _ = in.Close() }()

		data, err := io.ReadAll(in)
		require.NoError(t, err)
		assert.Equal(t, "var _ = {};", string(data))
	})

	t.Run("directory entry serves empty", func(t *testing.T) {
		res, err := bundle.Resolve("underscorejs/")
		require.NoError(t, err)
		assert.True(t, res.Exists())
		assert.Equal(t, int64(0), res.Length())

		in, err := res.Open()
		require.NoError(t, err)
		defer func() { _ = in.Close() }()

		data, err := io.ReadAll(in)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := bundle.Resolve("nope.js")
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := bundle.Resolve("../outside")
		assert.ErrorIs(t, err, staticd.ErrNotFound)
	})
}

func TestOpenZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.zip")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("lib/app.js")
	require.NoError(t, err)
	_, err = w.Write([]byte("console.log(1);"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	bundle, err := filesystem.OpenZip(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bundle.Close() })

	res, err := bundle.Resolve("lib/app.js")
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.Length())

	dir, err := bundle.Resolve("lib/")
	require.NoError(t, err)
	assert.Equal(t, int64(0), dir.Length())

	assert.True(t, bundle.Contains(res))
}
