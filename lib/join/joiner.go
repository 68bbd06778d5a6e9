package join

// Joiner owns the storage for one joined path at a time. The zero value is
// ready to use and is small enough to live on the stack:
//
//	var j join.Joiner
//	for _, name := range names {
//		p := j.Join(root, name)
//		...
//	}
//
// Each call to Join invalidates the string returned by the previous one.
// A Joiner must not be used by more than one goroutine at a time.
type Joiner struct {
	scratch  [ScratchSize]byte
	fallback []byte
	slow     bool
}

// Join joins segments into the Joiner's storage.
func (j *Joiner) Join(segments ...string) string {
	b := joinInBuffer(j.scratch[:], &j.fallback, segments)
	j.slow = usedFallback(b, j.fallback)
	return bytesToString(b)
}

// UsedFallback reports whether the last result was too long for the
// scratch array and was built in the fallback buffer instead.
func (j *Joiner) UsedFallback() bool {
	return j.slow
}

// Release hands the fallback buffer back to the buffer pool. Strings
// returned by the Joiner must not be used afterwards.
func (j *Joiner) Release() {
	releaseFallback(&j.fallback)
	j.slow = false
}

// forget resets j without pooling its fallback buffer, for when results
// built in it may still be in use.
func (j *Joiner) forget() {
	dropFallback(&j.fallback)
	j.slow = false
}

// With joins segments and calls fn with the result, which is only valid
// inside fn.
//
// fn is called indirectly, so the path escapes and the Joiner backing it is
// heap allocated on every call. Hot loops should declare a Joiner instead.
func With[T any](segments []string, fn func(path string) T) T {
	var j Joiner
	return fn(j.Join(segments...))
}

// With2 is With for two independent joins. It allocates both Joiners.
func With2[T any](a, b []string, fn func(pathA, pathB string) T) T {
	var ja, jb Joiner
	return fn(ja.Join(a...), jb.Join(b...))
}
