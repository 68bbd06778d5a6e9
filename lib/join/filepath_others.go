//go:build !unix && !(js && wasm) && !wasip1

package join

import (
	"os"
	"path/filepath"
)

// separator - host path separator.
const separator = os.PathSeparator

func isSeparator(c byte) bool {
	return os.IsPathSeparator(c)
}

func isAbs(path string) bool {
	return filepath.IsAbs(path) || filepath.VolumeName(path) != "" ||
		(path != "" && os.IsPathSeparator(path[0]))
}

// joinInBuffer always uses the fallback buffer. The scratch buffer is only
// used on unix where the separator and absolute path rules are a single byte
// test.
func joinInBuffer(_ []byte, fallback *[]byte, segments []string) []byte {
	total := 0
	for _, s := range segments {
		if len(s) >= maxInt-total {
			panic("join: output length overflow")
		}
		total += len(s) + 1
	}
	if total == len(segments) {
		return nil
	}

	return writeFallback(fallback, total, segments)
}
