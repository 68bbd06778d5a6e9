//go:build unix || (js && wasm) || wasip1

package join

// separator - slash separator for unix.
const separator = '/'

func isSeparator(c byte) bool {
	return c == separator
}

func isAbs(path string) bool {
	return path != "" && path[0] == separator
}

// joinInBuffer builds the joined path in scratch when it fits, otherwise in
// the fallback buffer.
func joinInBuffer(scratch []byte, fallback *[]byte, segments []string) []byte {
	segments, total := retained(segments)
	if total == 0 {
		return nil
	}

	if total > len(scratch) {
		return writeFallback(fallback, total, segments)
	}

	pos := 0
	for _, s := range segments {
		if s == "" {
			continue
		}
		if pos > 0 && scratch[pos-1] != separator {
			scratch[pos] = separator
			pos++
		}
		pos += copy(scratch[pos:], s)
	}
	// NUL sentinel after the path, total reserves room for it.
	scratch[pos] = 0
	return scratch[:pos]
}
