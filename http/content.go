package http

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nlowe/staticd"
)

// writeContent streams the full resource into w. A resource that
// vanished between resolution and open writes nothing: the status
// already committed by the handler stands and the body stays empty.
// Close failures are swallowed; they must never alter the response
// already produced.
func writeContent(w io.Writer, res staticd.Resource) {
	in, err := res.Open()
	if err != nil {
		slog.Warn("resource vanished before write", "name", res.Name(), "err", err)
		return
	}
	defer closeQuietly(in, res.Name())

	if _, err := io.Copy(w, in); err != nil {
		slog.Warn("copy resource content", "name", res.Name(), "err", err)
	}
}

// writeRange streams one resolved byte window of the resource into w,
// with the same open- and close-failure tolerance as writeContent.
func writeRange(w io.Writer, res staticd.Resource, rng staticd.ResolvedRange) {
	in, err := res.Open()
	if err != nil {
		slog.Warn("resource vanished before write", "name", res.Name(), "err", err)
		return
	}
	defer closeQuietly(in, res.Name())

	if err := copyWindow(w, in, rng); err != nil {
		slog.Warn("copy resource range", "name", res.Name(), "err", err)
	}
}

// writeMultipart writes a multipart/byteranges body: every part opens
// its own stream so unordered and overlapping windows work on
// non-seekable sources.
func writeMultipart(w io.Writer, res staticd.Resource, ranges []staticd.ResolvedRange, boundary, mediaType string) {
	total := res.Length()
	for _, rng := range ranges {
		fmt.Fprintf(w, "\r\n--%s\r\n", boundary)
		if mediaType != "" {
			fmt.Fprintf(w, "Content-Type: %s\r\n", mediaType)
		}
		fmt.Fprintf(w, "Content-Range: %s\r\n\r\n", rng.ContentRange(total))
		writeRange(w, res, rng)
	}
	fmt.Fprintf(w, "\r\n--%s--\r\n", boundary)
}

// copyWindow copies the inclusive byte window rng from src to dst,
// seeking when the source supports it and discarding a prefix
// otherwise.
func copyWindow(dst io.Writer, src io.Reader, rng staticd.ResolvedRange) error {
	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(rng.First, io.SeekStart); err != nil {
			return err
		}
	} else if _, err := io.CopyN(io.Discard, src, rng.First); err != nil {
		return err
	}
	_, err := io.CopyN(dst, src, rng.Length())
	return err
}

// closeQuietly releases the resource stream on every exit path. A
// failing close is deliberately discarded: the response has already
// been produced.
func closeQuietly(c io.Closer, name string) {
	if err := c.Close(); err != nil {
		slog.Warn("close resource stream", "name", name, "err", err)
	}
}

// newBoundary returns an opaque multipart boundary token. It is random
// per response, so it cannot collide with resource content by
// construction.
func newBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
