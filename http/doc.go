// Package http serves static resources resolved through a staticd.Chain.
//
// The package implements the request-side state machine for static
// serving: path processing, resolution, conditional requests, caching
// headers, byte ranges (including multipart/byteranges responses), and
// tolerant content streaming.
//
// # Status Codes
//
//   - 200 for full responses (GET and HEAD)
//   - 206 for single-range and multi-range partial responses
//   - 304 when If-Modified-Since covers the resource's modification time
//   - 404 for every unresolvable path, uniformly
//   - 416 for malformed or unsatisfiable Range headers
//
// Unsupported methods surface as staticd.ErrMethodNotSupported from
// HandleRequest; the Router translates them to 405 with an Allow header.
// A request without an extracted resource path surfaces as
// staticd.ErrNoPathContext, which indicates a wiring mistake rather than
// a bad request.
//
// # Usage
//
//	dir, _ := filesystem.NewDir("./public")
//	chain := staticd.NewChain([]staticd.Location{dir})
//
//	cfg := http.HandlerConfig{
//	    Cache: staticd.CachePolicy{CacheSeconds: 3600, UseCacheControlHeader: true, UseCacheControlNoStore: true},
//	}
//	handler := http.NewHandler(&cfg, chain)
//	http.ListenAndServe(":8080", handler.Router())
//
// HandleRequest can also be mounted behind a different router; wrap the
// request context with WithResourcePath to supply the path within the
// mapping.
//
// # Failure Tolerance
//
// Content writing never escalates resource I/O failures: a resource that
// vanished after resolution produces the already-committed status with
// an empty body, and close-time failures are logged and discarded.
package http
