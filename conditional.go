package staticd

import "time"

// NotModifiedSince reports whether a request carrying the given
// If-Modified-Since value can be answered with 304 Not Modified for res.
//
// Both timestamps are truncated to whole seconds before comparison
// because the wire format does not carry sub-second precision. A
// resource with an unknown modification time is never reported as
// unmodified.
func NotModifiedSince(res Resource, ifModifiedSince time.Time) bool {
	mod := res.ModTime()
	if mod.IsZero() || ifModifiedSince.IsZero() {
		return false
	}
	return !mod.Truncate(time.Second).After(ifModifiedSince.Truncate(time.Second))
}
