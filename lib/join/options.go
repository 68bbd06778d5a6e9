package join

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options configures a Buffer.
type Options struct {
	// ScratchCapacity is the number of bytes reserved before joins fall back
	// to the heap. Zero disables the scratch buffer.
	ScratchCapacity int
}

// DefaultOptions returns the options a Joiner effectively uses.
func DefaultOptions() Options {
	return Options{
		ScratchCapacity: ScratchSize,
	}
}

// AddFlags registers the options on flagSet.
func (opt *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.IntVar(&opt.ScratchCapacity, "join-scratch-capacity", opt.ScratchCapacity, "Bytes reserved for joining paths before using the heap")
}

// Validate checks the options are usable.
func (opt Options) Validate() error {
	if opt.ScratchCapacity < 0 {
		return fmt.Errorf("join: scratch capacity must not be negative, got %d", opt.ScratchCapacity)
	}
	return nil
}

// Buffer is a reusable joiner with a configurable scratch capacity. The
// scratch is allocated once by NewBuffer.
//
// Like Joiner, each Join invalidates the previous result and a Buffer must
// not be shared between goroutines.
type Buffer struct {
	scratch  []byte
	fallback []byte
	slow     bool
}

// NewBuffer returns a Buffer configured by opt.
func NewBuffer(opt Options) (*Buffer, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{scratch: make([]byte, opt.ScratchCapacity)}, nil
}

// Cap returns the scratch capacity.
func (b *Buffer) Cap() int {
	return len(b.scratch)
}

// Join joins segments into the Buffer's storage.
func (b *Buffer) Join(segments ...string) string {
	p := joinInBuffer(b.scratch, &b.fallback, segments)
	b.slow = usedFallback(p, b.fallback)
	return bytesToString(p)
}

// UsedFallback reports whether the last result did not fit in the scratch
// buffer.
func (b *Buffer) UsedFallback() bool {
	return b.slow
}

// Release hands the fallback buffer back to the buffer pool. Strings
// returned by the Buffer must not be used afterwards.
func (b *Buffer) Release() {
	releaseFallback(&b.fallback)
	b.slow = false
}
