package staticd

import (
	"io"
	"time"
)

// Resource is an opaque handle to a byte source resolved for a single
// request. Resources are resolved fresh per request and never cached.
type Resource interface {
	// Name returns the resource's path-like name, used for media type
	// lookup and logging.
	Name() string
	// Exists reports whether the underlying byte source exists.
	Exists() bool
	// Length returns the resource size in bytes.
	Length() int64
	// ModTime returns the last modification time, or the zero time when
	// unknown.
	ModTime() time.Time
	// Open returns a reader over the resource bytes. It returns
	// ErrNotFound if the underlying source vanished after resolution.
	Open() (io.ReadCloser, error)
}

// Location is a root under which resources may be served.
type Location interface {
	// Resolve resolves name relative to the location root. It returns
	// ErrNotFound when no servable resource exists at that name.
	Resolve(name string) (Resource, error)
	// Contains reports whether res is contained within this location.
	// Resolved resources must be contained in at least one allowed
	// location or resolution rejects them.
	Contains(res Resource) bool
}
