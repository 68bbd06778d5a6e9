// Package join joins path segments into a caller-supplied buffer so that
// short paths can be built in hot loops without touching the heap.
//
// The returned strings alias the buffer they were written into. They stay
// valid until the next join through the same storage.
package join

import (
	"strings"
	"unsafe"
)

const (
	// ScratchSize - default number of bytes reserved before falling back to the heap.
	ScratchSize = 128

	// maxInt - maximum value of int.
	maxInt = int(^uint(0) >> 1)
)

// InBuffer joins segments. If the result fits in scratch it is written
// there, otherwise into *fallback, which is allocated on first use and
// reused on later calls.
//
// The returned string aliases whichever of the two was used and must not
// be read after either is used for another join. Joining only empty
// segments returns "" without writing to either buffer.
//
// fallback may be nil, in which case long results are built in a fresh
// slice that is not kept for reuse.
func InBuffer(scratch []byte, fallback *[]byte, segments ...string) string {
	return bytesToString(joinInBuffer(scratch, fallback, segments))
}

// Join joins segments like InBuffer and returns a copy the caller owns.
// Short results cost a single allocation for the copy. Long results are
// built in a pooled buffer which is returned before Join does.
func Join(segments ...string) string {
	var j Joiner
	defer j.Release()
	return strings.Clone(j.Join(segments...))
}

// Native joins segments by applying Push to each in turn. It always
// allocates and is the reference InBuffer is measured against.
func Native(segments ...string) string {
	var dst []byte
	for _, s := range segments {
		dst = Push(dst, s)
	}
	return string(dst)
}

// retained returns the segments that survive the absolute path scan along
// with the number of bytes needed to join them, including one spare
// separator byte per segment.
func retained(segments []string) ([]string, int) {
	start := len(segments)
	total := 0
	for i := len(segments) - 1; i >= 0; i-- {
		s := segments[i]
		if s == "" {
			continue
		}
		if len(s) >= maxInt-total {
			panic("join: output length overflow")
		}
		total += len(s) + 1
		start = i
		if isAbs(s) {
			break
		}
	}
	return segments[start:], total
}

// zero-copy []byte -> string, valid while b is not modified.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
