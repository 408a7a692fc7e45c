package filesystem

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/nlowe/staticd"
)

// Bundle is a Location backed by an fs.FS, typically a zip archive or an
// embedded filesystem. Unlike Dir, an existing directory entry inside a
// bundle resolves to a zero-length servable resource; packaged archives
// carry explicit directory entries and serving them empty matches what
// their container reports.
type Bundle struct {
	name   string
	fsys   fs.FS
	closer io.Closer
}

// NewBundle wraps fsys as a location. name identifies the bundle in
// logs and check output.
func NewBundle(name string, fsys fs.FS) *Bundle {
	return &Bundle{name: name, fsys: fsys}
}

// OpenZip opens the zip archive at path as a location.
func OpenZip(path string) (*Bundle, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip bundle %q: %w", path, err)
	}
	return &Bundle{name: path, fsys: zr, closer: zr}, nil
}

// Name returns the bundle's identifying name.
func (b *Bundle) Name() string {
	return b.name
}

// Close releases the underlying archive, if any.
func (b *Bundle) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// Resolve resolves name within the bundle. Directory entries resolve to
// zero-length resources; missing entries yield staticd.ErrNotFound.
func (b *Bundle) Resolve(name string) (staticd.Resource, error) {
	name = strings.Trim(name, "/")
	if name == "" || !fs.ValidPath(name) {
		return nil, staticd.ErrNotFound
	}

	info, err := fs.Stat(b.fsys, name)
	if err != nil {
		return nil, staticd.ErrNotFound
	}

	res := &bundleResource{bundle: b, name: name, mod: info.ModTime(), dir: info.IsDir()}
	if !res.dir {
		res.size = info.Size()
	}
	return res, nil
}

// Contains reports whether res was resolved from this bundle. Paths
// within an fs.FS cannot escape it, so identity is sufficient.
func (b *Bundle) Contains(res staticd.Resource) bool {
	br, ok := res.(*bundleResource)
	return ok && br.bundle == b
}

type bundleResource struct {
	bundle *Bundle
	name   string
	size   int64
	mod    time.Time
	dir    bool
}

func (r *bundleResource) Name() string       { return r.name }
func (r *bundleResource) Exists() bool       { return true }
func (r *bundleResource) Length() int64      { return r.size }
func (r *bundleResource) ModTime() time.Time { return r.mod }

func (r *bundleResource) Open() (io.ReadCloser, error) {
	if r.dir {
		return io.NopCloser(strings.NewReader("")), nil
	}
	f, err := r.bundle.fsys.Open(r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, staticd.ErrNotFound
		}
		return nil, fmt.Errorf("open bundle entry %q: %w", r.name, err)
	}
	return f, nil
}
