// Package staticd provides the core engine for serving static resources
// over HTTP: path canonicalization, traversal-safe resource resolution,
// conditional requests, cache-control policies, and byte-range handling.
//
// # Key Components
//
//   - ProcessPath: collapses leading control characters and repeated
//     slashes in a request path into a canonical form
//   - Chain / PathResolver: resolves a processed path against an ordered
//     list of Locations, enforcing an allowed-location containment check
//   - CachePolicy: derives Cache-Control, Expires, and Pragma headers
//   - ParseRange: parses Range headers into resolved byte windows
//   - NotModifiedSince: If-Modified-Since evaluation with second precision
//
// # Locations
//
// A Location is a root under which resources may be served. The filesystem
// package provides two implementations: Dir, backed by a sandboxed
// directory, and Bundle, backed by an fs.FS such as a zip archive.
// Locations are ordered and the first match wins:
//
//	dir, _ := filesystem.NewDir("./public")
//	alt, _ := filesystem.NewDir("./fallback")
//	chain := staticd.NewChain([]staticd.Location{dir, alt})
//	res, err := chain.Resolve("/css/site.css")
//
// See the http package for the request handler that ties these together
// and the config package for configuration loading.
package staticd
