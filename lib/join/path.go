package join

import (
	bufferPool "github.com/libp2p/go-buffer-pool"
)

// Push appends elem to the path in dst and returns the extended slice.
//
//   - an empty elem leaves dst unchanged
//   - an absolute elem replaces dst
//   - otherwise a separator is added unless dst is empty or already ends in one
//
// The bytes of elem are copied verbatim, no cleaning is done.
func Push(dst []byte, elem string) []byte {
	if elem == "" {
		return dst
	}
	if isAbs(elem) {
		dst = dst[:0]
	} else if len(dst) > 0 && !isSeparator(dst[len(dst)-1]) {
		dst = append(dst, separator)
	}
	return append(dst, elem...)
}

// writeFallback joins segments into the buffer held by fallback, making
// sure it can hold n bytes first. Storage comes from the shared buffer pool
// and is only handed back by releaseFallback. A nil fallback gets a fresh
// slice which is not retained.
func writeFallback(fallback *[]byte, n int, segments []string) []byte {
	var dst []byte
	switch {
	case fallback == nil:
		dst = make([]byte, 0, n)
	case cap(*fallback) < n:
		dst = bufferPool.Get(n)[:0]
	default:
		dst = (*fallback)[:0]
	}
	for _, s := range segments {
		dst = Push(dst, s)
	}
	if fallback != nil {
		*fallback = dst
	}
	return dst
}

// releaseFallback hands the buffer back to the pool. Only call it when no
// result built in the buffer can still be read.
func releaseFallback(fallback *[]byte) {
	if *fallback == nil {
		return
	}
	bufferPool.Put(*fallback)
	*fallback = nil
}

// dropFallback forgets the buffer without pooling it, so results still
// pointing into it stay valid until the GC frees them.
func dropFallback(fallback *[]byte) {
	*fallback = nil
}

// usedFallback reports whether b was built in fallback.
func usedFallback(b, fallback []byte) bool {
	return len(b) > 0 && len(fallback) > 0 && &b[0] == &fallback[0]
}
