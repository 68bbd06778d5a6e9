// Package autopool wraps sync.Pool so that pooled objects which are never
// explicitly returned go back into the pool when the GC is about to free
// them. Objects still referenced (directly or through interior pointers)
// are never recycled this way, but memory they merely point to may still
// be in use, so recycling has its own cleanup hook.
package autopool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Stats counts pool traffic.
type Stats struct {
	// Gets is the number of objects handed out.
	Gets uint64
	// Misses is the number of Gets that had to create a new object.
	Misses uint64
	// Puts is the number of objects returned with Put.
	Puts uint64
	// Recycled is the number of dropped objects returned by the GC.
	Recycled uint64
}

type counters struct {
	gets, misses, puts, recycled atomic.Uint64
}

// Pool is a sync.Pool of pointers whose unreturned objects are recycled on GC.
type Pool[object any] struct {
	name          string
	pool          sync.Pool
	counters      counters
	resetFunc     func(object)
	recycleFunc   func(object)
	finalizerFunc func(object)
}

// New returns a Pool which creates objects with newFunc. Objects given to
// Put are cleaned with resetFunc. Objects recovered from the GC are cleaned
// with recycleFunc instead, which must not hand out anything the dropped
// object's users may still hold. object must be a pointer type.
func New[object any](name string, newFunc func() object, resetFunc, recycleFunc func(object)) *Pool[object] {
	p := &Pool[object]{name: name, resetFunc: resetFunc, recycleFunc: recycleFunc}
	p.pool.New = func() any {
		n := p.counters.misses.Add(1)
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			logrus.WithFields(logrus.Fields{
				"pool":   p.name,
				"misses": n,
			}).Trace("autopool: allocating new object")
		}
		return newFunc()
	}
	p.finalizerFunc = p.recycle
	return p
}

// Get returns an object from the pool. A finalizer is set on the object
// so it is returned to the pool if it is dropped without calling Put.
// Objects relying on their own finalizers must not be pooled here.
func (p *Pool[object]) Get() object {
	p.counters.gets.Add(1)
	x := p.pool.Get().(object)
	runtime.SetFinalizer(x, p.finalizerFunc)
	return x
}

// Put resets x and adds it to the pool.
func (p *Pool[object]) Put(x object) {
	p.counters.puts.Add(1)
	runtime.SetFinalizer(x, nil)
	if p.resetFunc != nil {
		p.resetFunc(x)
	}
	p.pool.Put(x)
}

func (p *Pool[object]) recycle(x object) {
	p.counters.recycled.Add(1)
	if p.recycleFunc != nil {
		p.recycleFunc(x)
	}
	p.pool.Put(x)
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[object]) Stats() Stats {
	return Stats{
		Gets:     p.counters.gets.Load(),
		Misses:   p.counters.misses.Load(),
		Puts:     p.counters.puts.Load(),
		Recycled: p.counters.recycled.Load(),
	}
}

// LogStats logs the pool counters at debug level.
func (p *Pool[object]) LogStats() {
	s := p.Stats()
	logrus.WithFields(logrus.Fields{
		"pool":     p.name,
		"gets":     s.Gets,
		"misses":   s.Misses,
		"puts":     s.Puts,
		"recycled": s.Recycled,
	}).Debug("autopool: stats")
}
