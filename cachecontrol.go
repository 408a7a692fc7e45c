package staticd

import (
	"net/http"
	"strconv"
	"time"
)

// CachePolicy controls the caching headers emitted for served resources.
// It is set once at handler configuration time and immutable afterwards.
type CachePolicy struct {
	// CacheSeconds is the freshness lifetime. Negative disables caching
	// headers entirely; zero prevents caching.
	CacheSeconds int
	// UseExpiresHeader additionally emits an HTTP 1.0 Expires header
	// when CacheSeconds is positive.
	UseExpiresHeader bool
	// UseCacheControlHeader enables the legacy prevent-caching header
	// combination (Pragma, no-cache + no-store, Expires: now) when
	// CacheSeconds is zero and no-store mode is disabled.
	UseCacheControlHeader bool
	// UseCacheControlNoStore emits Cache-Control: no-store when
	// CacheSeconds is zero.
	UseCacheControlNoStore bool
	// AlwaysMustRevalidate appends must-revalidate to max-age responses.
	AlwaysMustRevalidate bool
}

// CacheHeader is one header emitted by a CachePolicy. Order matters: the
// legacy prevent-caching combination emits Cache-Control twice and the
// values must stay in sequence.
type CacheHeader struct {
	Name  string
	Value string
}

// Headers derives the caching headers for the policy at the given time.
// Last-Modified is not part of the policy; the handler emits it whenever
// the resource's modification time is known, regardless of which branch
// applies here.
func (p CachePolicy) Headers(now time.Time) []CacheHeader {
	switch {
	case p.CacheSeconds > 0:
		value := "max-age=" + strconv.Itoa(p.CacheSeconds)
		if p.AlwaysMustRevalidate {
			value += ", must-revalidate"
		}
		headers := []CacheHeader{{"Cache-Control", value}}
		if p.UseExpiresHeader {
			expires := now.Add(time.Duration(p.CacheSeconds) * time.Second)
			headers = append(headers, CacheHeader{"Expires", httpDate(expires)})
		}
		return headers
	case p.CacheSeconds == 0:
		if p.UseCacheControlNoStore {
			return []CacheHeader{{"Cache-Control", "no-store"}}
		}
		if p.UseCacheControlHeader {
			return []CacheHeader{
				{"Pragma", "no-cache"},
				{"Cache-Control", "no-cache"},
				{"Cache-Control", "no-store"},
				{"Expires", httpDate(now)},
			}
		}
		return nil
	default:
		return nil
	}
}

func httpDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
