// Package workerpool provides the per-call fork-join pool used by the vector
// kernels.
//
// A Pool is transient: it is constructed for one filter invocation, fed one
// task per partition, and drained with Wait before the invocation returns.
// Tasks capture slices of the caller's buffers, so they must never outlive
// the call. A drained pool cannot be reused.
//
// Usage:
//
//	workerpool.Run(workerpool.DefaultWorkers(), height, func(start, end int) {
//	    processRows(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// fallbackWorkers is used when the runtime reports fewer than two CPUs.
const fallbackWorkers = 4

// DefaultWorkers returns the number of CPUs, or 4 when that is below 2.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 2 {
		return fallbackWorkers
	}
	return n
}

// Pool is a bounded set of worker goroutines consuming a FIFO task queue.
// The queue and the stop flag are the only shared state, guarded by one
// mutex and one condition variable.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	stop    bool
	workers int
	wg      sync.WaitGroup
}

// New starts a pool of n workers. n <= 0 selects DefaultWorkers.
func New(n int) *Pool {
	if n <= 0 {
		n = DefaultWorkers()
	}

	p := &Pool{workers: n}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(n)
	for range n {
		go p.worker()
	}
	return p
}

// worker waits for a task or the stop signal. It exits only once stop is set
// and the queue is empty, so queued work always completes.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.tasks) == 0 && !p.stop {
			p.cond.Wait()
		}
		if len(p.tasks) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.tasks[0]
		p.tasks[0] = nil
		p.tasks = p.tasks[1:]
		p.mu.Unlock()

		task()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Submit appends task to the queue and wakes one waiting worker.
// Submit is meant for a single producer. It panics once Wait has been called.
func (p *Pool) Submit(task func()) {
	p.mu.Lock()
	if p.stop {
		p.mu.Unlock()
		panic("workerpool: Submit after Wait")
	}
	p.tasks = append(p.tasks, task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Wait sets the stop flag, wakes every worker and blocks until all of them
// have exited after running the queued tasks. Calling Wait more than once is
// safe.
func (p *Pool) Wait() {
	p.mu.Lock()
	p.stop = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

// Range is a half-open interval [Start, End) of work units.
type Range struct {
	Start int
	End   int
}

// Len returns the number of units in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [0, units) into at most parts contiguous, disjoint ranges.
// Every part gets units/parts, and the first units%parts parts get one more.
// Empty ranges are omitted, so fewer than parts ranges come back when
// units < parts.
func Split(units, parts int) []Range {
	if units <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}

	per := units / parts
	rem := units % parts
	ranges := make([]Range, 0, min(parts, units))

	start := 0
	for i := range parts {
		count := per
		if i < rem {
			count++
		}
		if count == 0 {
			break
		}
		ranges = append(ranges, Range{Start: start, End: start + count})
		start += count
	}
	return ranges
}

// Run partitions [0, units) across a fresh pool of the given size, submits
// one task per range and drains the pool. fn receives [start, end).
func Run(workers, units int, fn func(start, end int)) {
	if units <= 0 {
		return
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	ranges := Split(units, workers)
	pool := New(len(ranges))
	for _, r := range ranges {
		pool.Submit(func() {
			fn(r.Start, r.End)
		})
	}
	pool.Wait()
}
