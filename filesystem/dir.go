// Package filesystem provides Location implementations for the resolver
// chain: Dir serves files from a sandboxed directory root, Bundle serves
// entries of an fs.FS such as a zip archive.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nlowe/staticd"
)

// Dir is a Location backed by a directory on disk. The directory is
// opened as an os.Root so file access is sandboxed below it, and the
// canonical absolute root is recorded for containment checks.
//
// Directories below the root never resolve: requesting one yields
// staticd.ErrNotFound.
type Dir struct {
	root *os.Root
	base string
}

// NewDir opens path as a sandboxed location root.
func NewDir(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("canonicalize %q: %w", path, err)
	}

	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, fmt.Errorf("open location root: %w", err)
	}

	return &Dir{root: root, base: abs}, nil
}

// Root returns the canonical absolute path of the location root.
func (d *Dir) Root() string {
	return d.base
}

// Close releases the underlying root handle.
func (d *Dir) Close() error {
	return d.root.Close()
}

// Resolve resolves name below the root. Directories and missing files
// yield staticd.ErrNotFound.
func (d *Dir) Resolve(name string) (staticd.Resource, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return nil, staticd.ErrNotFound
	}

	info, err := d.root.Stat(name)
	if err != nil {
		return nil, staticd.ErrNotFound
	}
	if info.IsDir() {
		return nil, staticd.ErrNotFound
	}

	return &fileResource{
		dir:  d,
		name: name,
		abs:  filepath.Join(d.base, filepath.FromSlash(name)),
		size: info.Size(),
		mod:  info.ModTime(),
	}, nil
}

// Contains reports whether res is a file resource whose canonical path
// is a descendant of this location's root.
func (d *Dir) Contains(res staticd.Resource) bool {
	fr, ok := res.(*fileResource)
	if !ok {
		return false
	}
	rel, err := filepath.Rel(d.base, fr.abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// fileResource is a snapshot of a resolved file. Metadata is captured at
// resolution time; Open re-reads the file and reports staticd.ErrNotFound
// if it vanished in between.
type fileResource struct {
	dir  *Dir
	name string
	abs  string
	size int64
	mod  time.Time
}

func (r *fileResource) Name() string       { return r.name }
func (r *fileResource) Exists() bool       { return true }
func (r *fileResource) Length() int64      { return r.size }
func (r *fileResource) ModTime() time.Time { return r.mod }

func (r *fileResource) Open() (io.ReadCloser, error) {
	f, err := r.dir.root.Open(r.name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, staticd.ErrNotFound
		}
		return nil, fmt.Errorf("open %q: %w", r.name, err)
	}
	return f, nil
}
