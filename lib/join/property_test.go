package join

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func segmentsGen() *rapid.Generator[[]string] {
	segment := rapid.StringOfN(rapid.RuneFrom([]rune{'a', 'b', '.', separator}), 0, 40, -1)
	return rapid.SliceOfN(segment, 0, 8)
}

func TestInBufferMatchesNative(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := segmentsGen().Draw(t, "segments")
		capacity := rapid.IntRange(0, 2*ScratchSize).Draw(t, "capacity")

		scratch := make([]byte, capacity)
		var fallback []byte
		got := InBuffer(scratch, &fallback, segments...)
		assert.Equal(t, Native(segments...), got)
	})
}

func TestInBufferAbsoluteOverride(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := segmentsGen().Draw(t, "segments")

		last := -1
		for i, s := range segments {
			if isAbs(s) {
				last = i
			}
		}
		if last < 0 {
			t.Skip("no absolute segment")
		}

		var j Joiner
		got := j.Join(segments...)
		assert.Equal(t, Native(segments[last:]...), got)
		assert.True(t, strings.HasPrefix(got, segments[last]))
	})
}

func TestInBufferEmptySegmentTransparent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := segmentsGen().Draw(t, "segments")
		at := rapid.IntRange(0, len(segments)).Draw(t, "at")

		with := make([]string, 0, len(segments)+1)
		with = append(with, segments[:at]...)
		with = append(with, "")
		with = append(with, segments[at:]...)

		var a, b Joiner
		assert.Equal(t, a.Join(segments...), b.Join(with...))
	})
}

func TestInBufferTrailingSeparator(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := segmentsGen().Draw(t, "segments")

		lastNonEmpty := ""
		for _, s := range segments {
			if s != "" {
				lastNonEmpty = s
			}
		}

		var j Joiner
		got := j.Join(segments...)
		endsWithSep := got != "" && isSeparator(got[len(got)-1])
		wantSep := lastNonEmpty != "" && isSeparator(lastNonEmpty[len(lastNonEmpty)-1])
		assert.Equal(t, wantSep, endsWithSep, "result %q", got)
	})
}

func TestJoinerFallbackReuse(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		var j Joiner
		for _, segments := range rapid.SliceOfN(segmentsGen(), 1, 16).Draw(t, "joins") {
			got := j.Join(segments...)
			assert.Equal(t, Native(segments...), got)
			if len(got) >= ScratchSize {
				assert.True(t, j.UsedFallback(), "result of %d bytes", len(got))
			}
		}
	})
}
