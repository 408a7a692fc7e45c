package staticd

import (
	"errors"
	"fmt"
	"net/url"
	gopath "path"
	"strings"
)

// Resolver turns a processed request path into a Resource using the
// given ordered locations. Implementations return ErrNotFound when no
// location yields a servable resource.
type Resolver interface {
	Resolve(path string, locations []Location) (Resource, error)
}

// Chain resolves request paths against an ordered list of locations by
// trying each resolver in turn, stopping at the first success.
//
// At construction time any PathResolver in the chain that was not given
// an explicit allowed-location list derives one from the configured
// locations. An explicit list is never overwritten.
type Chain struct {
	locations []Location
	resolvers []Resolver
}

// NewChain builds a resolver chain over locations. When no resolvers are
// given the chain consists of a single PathResolver.
func NewChain(locations []Location, resolvers ...Resolver) *Chain {
	if len(resolvers) == 0 {
		resolvers = []Resolver{&PathResolver{}}
	}
	for _, r := range resolvers {
		if pr, ok := r.(*PathResolver); ok && pr.Allowed == nil {
			allowed := make([]Location, len(locations))
			copy(allowed, locations)
			pr.Allowed = allowed
		}
	}
	return &Chain{locations: locations, resolvers: resolvers}
}

// Locations returns the configured locations in order.
func (c *Chain) Locations() []Location {
	return c.locations
}

// Resolve resolves path through the chain. It returns ErrNotFound when
// no resolver produces a resource.
func (c *Chain) Resolve(path string) (Resource, error) {
	for _, r := range c.resolvers {
		res, err := r.Resolve(path, c.locations)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("resolve %q: %w", path, err)
		}
	}
	return nil, ErrNotFound
}

// PathResolver resolves a path relative to each location in order and
// enforces that the result is contained within an allowed location.
// All rejections surface as ErrNotFound so that the response cannot leak
// which check failed.
type PathResolver struct {
	// Allowed is the set of locations a resolved resource must be
	// contained within. When nil, NewChain fills it with the configured
	// locations.
	Allowed []Location
}

func (r *PathResolver) Resolve(path string, locations []Location) (Resource, error) {
	if isInvalidPath(path) {
		return nil, ErrNotFound
	}

	// Decode defensively: a broken escape sequence is a non-match, never
	// a server error.
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return nil, ErrNotFound
	}
	if isInvalidPath(decoded) {
		return nil, ErrNotFound
	}

	for _, loc := range locations {
		res, resErr := loc.Resolve(decoded)
		if resErr != nil {
			continue
		}
		if !r.allowed(res) {
			continue
		}
		return res, nil
	}
	return nil, ErrNotFound
}

func (r *PathResolver) allowed(res Resource) bool {
	for _, loc := range r.Allowed {
		if loc.Contains(res) {
			return true
		}
	}
	return false
}

// isInvalidPath reports whether path must be rejected outright: empty
// paths, paths carrying a ".." segment in raw or normalized form, and
// scheme-prefixed paths such as "file:..." or "/url:...".
func isInvalidPath(path string) bool {
	if path == "" {
		return true
	}
	if hasDotDotSegment(path) || hasDotDotSegment(gopath.Clean(path)) {
		return true
	}
	rel := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(rel, "/:"); i >= 0 && rel[i] == ':' {
		return true
	}
	return false
}

func hasDotDotSegment(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
