package staticd

import (
	"fmt"
	"strconv"
	"strings"
)

const bytesUnitPrefix = "bytes="

// ResolvedRange is a concrete inclusive byte window within a resource,
// always within [0, length-1].
type ResolvedRange struct {
	First int64
	Last  int64
}

// Length returns the number of bytes covered by the range.
func (r ResolvedRange) Length() int64 {
	return r.Last - r.First + 1
}

// ContentRange formats the Content-Range header value for a resource of
// the given total length.
func (r ResolvedRange) ContentRange(total int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.First, r.Last, total)
}

// RangeSet is the outcome of parsing a Range header against a resource
// length. An empty set means no Range header was present and the full
// resource is served.
type RangeSet struct {
	Ranges []ResolvedRange
}

// ParseRange parses a Range header value for a resource of the given
// length. An empty header yields an empty set. A malformed unit anywhere
// in the list, or a start beyond the resource, yields
// ErrRangeNotSatisfiable; the caller answers 416 with
// "Content-Range: bytes */<length>".
func ParseRange(header string, length int64) (RangeSet, error) {
	if header == "" {
		return RangeSet{}, nil
	}
	if !strings.HasPrefix(header, bytesUnitPrefix) {
		return RangeSet{}, ErrRangeNotSatisfiable
	}

	var ranges []ResolvedRange
	for _, spec := range strings.Split(header[len(bytesUnitPrefix):], ",") {
		spec = strings.TrimSpace(spec)
		r, err := resolveRangeSpec(spec, length)
		if err != nil {
			return RangeSet{}, err
		}
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return RangeSet{}, ErrRangeNotSatisfiable
	}
	return RangeSet{Ranges: ranges}, nil
}

// resolveRangeSpec resolves one comma-separated range unit, which is one
// of "start-end", "start-", or "-suffixLength".
func resolveRangeSpec(spec string, length int64) (ResolvedRange, error) {
	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return ResolvedRange{}, ErrRangeNotSatisfiable
	}

	startPart := spec[:dash]
	endPart := spec[dash+1:]

	if startPart == "" {
		// Suffix form: the last N bytes, the whole resource when N
		// covers it.
		suffix, err := strconv.ParseInt(endPart, 10, 64)
		if err != nil || suffix <= 0 {
			return ResolvedRange{}, ErrRangeNotSatisfiable
		}
		first := length - suffix
		if first < 0 {
			first = 0
		}
		return ResolvedRange{First: first, Last: length - 1}, nil
	}

	start, err := strconv.ParseInt(startPart, 10, 64)
	if err != nil {
		return ResolvedRange{}, ErrRangeNotSatisfiable
	}

	last := length - 1
	if endPart != "" {
		end, endErr := strconv.ParseInt(endPart, 10, 64)
		if endErr != nil {
			return ResolvedRange{}, ErrRangeNotSatisfiable
		}
		if end < last {
			last = end
		}
	}
	if start < 0 || start > last {
		return ResolvedRange{}, ErrRangeNotSatisfiable
	}
	return ResolvedRange{First: start, Last: last}, nil
}
