package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nlowe/staticd"
)

// MimeFunc looks up the media type for a resource name. It returns the
// empty string when the type is unknown.
type MimeFunc func(name string) string

// DetectContentType is the default MimeFunc, based on the file
// extension.
func DetectContentType(name string) string {
	return mime.TypeByExtension(path.Ext(name))
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	Cache staticd.CachePolicy
	Mime  MimeFunc
	CORS  CORSConfig
}

// Handler serves static resources resolved through a staticd.Chain.
type Handler struct {
	config HandlerConfig
	chain  *staticd.Chain
}

// NewHandler creates a new Handler with the given configuration and
// resolver chain. A nil Mime func falls back to DetectContentType.
func NewHandler(config *HandlerConfig, chain *staticd.Chain) *Handler {
	h := &Handler{
		config: *config,
		chain:  chain,
	}
	if h.config.Mime == nil {
		h.config.Mime = DetectContentType
	}
	return h
}

// resourcePathKey is the context key carrying the path within the
// handler's mapping, extracted by the routing layer.
type resourcePathKey struct{}

// WithResourcePath returns a context carrying the extracted
// path-within-mapping for a request.
func WithResourcePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, resourcePathKey{}, path)
}

// ResourcePathFrom retrieves the extracted path from the request
// context.
func ResourcePathFrom(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(resourcePathKey{}).(string)
	return p, ok
}

// Router returns an http.Handler serving the configured locations under
// the root of the router. The wildcard value becomes the
// path-within-mapping seen by HandleRequest.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(slog.Default()))

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Handle("/*", http.HandlerFunc(h.serve))

	return r
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	ctx := WithResourcePath(r.Context(), chi.URLParam(r, "*"))

	err := h.HandleRequest(w, r.WithContext(ctx))
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, staticd.ErrMethodNotSupported):
		w.Header().Set("Allow", "GET, HEAD")
		WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	default:
		// A missing path context means the handler is mounted without a
		// routing layer extracting the path. That is a deployment
		// mistake, not a request we can answer.
		slog.Error("request handling failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// HandleRequest runs the serving state machine for one request. The
// request context must carry the path within the handler's mapping (see
// WithResourcePath); its absence is a configuration error returned as
// staticd.ErrNoPathContext. Methods other than GET and HEAD return
// staticd.ErrMethodNotSupported for the caller to translate.
//
// All other outcomes are written directly: 200, 206, 304, 404, or 416.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) error {
	raw, ok := ResourcePathFrom(r.Context())
	if !ok {
		return staticd.ErrNoPathContext
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return fmt.Errorf("%w: %s", staticd.ErrMethodNotSupported, r.Method)
	}

	res, err := h.chain.Resolve(staticd.ProcessPath(raw))
	if err != nil || !res.Exists() {
		writeNotFound(w, r)
		return nil
	}

	if since, sinceOK := parseHTTPDate(r.Header.Get("If-Modified-Since")); sinceOK {
		if staticd.NotModifiedSince(res, since) {
			w.WriteHeader(http.StatusNotModified)
			return nil
		}
	}

	h.writeCacheHeaders(w, res)

	mediaType := h.config.Mime(res.Name())
	length := res.Length()

	rangeHeader := ""
	if r.Method == http.MethodGet && length > 0 {
		rangeHeader = r.Header.Get("Range")
	}

	set, err := staticd.ParseRange(rangeHeader, length)
	if err != nil {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", length))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return nil
	}

	switch {
	case len(set.Ranges) == 0:
		if mediaType != "" {
			w.Header().Set("Content-Type", mediaType)
		}
		w.Header().Set("Content-Length", strconv.FormatInt(length, 10))
		w.Header().Set("Accept-Ranges", "bytes")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return nil
		}
		writeContent(w, res)

	case len(set.Ranges) == 1:
		rng := set.Ranges[0]
		if mediaType != "" {
			w.Header().Set("Content-Type", mediaType)
		}
		w.Header().Set("Content-Range", rng.ContentRange(length))
		w.Header().Set("Content-Length", strconv.FormatInt(rng.Length(), 10))
		w.WriteHeader(http.StatusPartialContent)
		if r.Method == http.MethodHead {
			return nil
		}
		writeRange(w, res, rng)

	default:
		boundary := newBoundary()
		w.Header().Set("Content-Type", "multipart/byteranges; boundary="+boundary)
		w.WriteHeader(http.StatusPartialContent)
		if r.Method == http.MethodHead {
			return nil
		}
		writeMultipart(w, res, set.Ranges, boundary, mediaType)
	}

	return nil
}

func (h *Handler) writeCacheHeaders(w http.ResponseWriter, res staticd.Resource) {
	for _, header := range h.config.Cache.Headers(time.Now()) {
		w.Header().Add(header.Name, header.Value)
	}
	if mod := res.ModTime(); !mod.IsZero() {
		w.Header().Set("Last-Modified", mod.UTC().Format(http.TimeFormat))
	}
}

func parseHTTPDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
