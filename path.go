package staticd

// ProcessPath normalizes a raw request path fragment before resolution.
// It skips every leading character that is a control character (code
// point <= 0x20 or 0x7F) or a slash, and collapses what was skipped into
// at most one leading slash. Interleaved noise such as "  // /// //  x"
// therefore becomes "/x", defeating encoding tricks that rely on
// repeated separators.
//
// When raw is already in processed form the same string is returned
// unchanged.
func ProcessPath(raw string) string {
	slash := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '/' {
			slash = true
			continue
		}
		if c <= 0x20 || c == 0x7F {
			continue
		}
		// First genuine path character.
		if slash {
			if raw[:i] == "/" {
				return raw
			}
			return "/" + raw[i:]
		}
		if i == 0 {
			return raw
		}
		return raw[i:]
	}
	if slash {
		return "/"
	}
	return ""
}
