package join

import (
	"github.com/darthshadow/pathjoin/lib/autopool"
)

// Pool hands out Joiners for code which cannot keep one on the stack, such
// as a join whose result is stored in a long-lived struct for a while.
// Fallback buffers are returned to the buffer pool when a Joiner is Put.
// A Joiner dropped without Put goes back to the Pool once the GC finds it,
// but its fallback buffer is left to the GC since long results built in it
// may still be referenced.
type Pool struct {
	pool *autopool.Pool[*Joiner]
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: autopool.New("join",
			func() *Joiner { return new(Joiner) },
			(*Joiner).Release,
			(*Joiner).forget,
		),
	}
}

// Get returns a Joiner ready for use.
func (p *Pool) Get() *Joiner {
	return p.pool.Get()
}

// Put releases j and returns it to the pool. Strings returned by j must
// not be used afterwards.
func (p *Pool) Put(j *Joiner) {
	p.pool.Put(j)
}

// Stats returns the pool counters.
func (p *Pool) Stats() autopool.Stats {
	return p.pool.Stats()
}

// LogStats logs the pool counters.
func (p *Pool) LogStats() {
	p.pool.LogStats()
}
