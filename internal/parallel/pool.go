// Package parallel runs row bands of a synthesis pass on a fixed set of
// worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed pool of goroutines executing submitted work.
//
// Work is handed over on an unbuffered channel, so a task is either picked
// up by a live worker or, once the pool is closed, run by the caller. No
// submitted task is ever dropped.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func()),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// ExecuteAll runs every work item and waits for all of them to complete.
// Items run inline on the caller's goroutine once the pool is closed.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for _, fn := range work {
		wrapped := func() {
			defer completion.Done()
			fn()
		}
		select {
		case p.queue <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	completion.Wait()
}

// Rows splits [0, height) into contiguous bands, one or more per worker,
// and calls fn(y0, y1) for each band in parallel. It returns when every band
// is done.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	bands := Bands(height, p.workers*2)
	if len(bands) <= 1 {
		for _, b := range bands {
			fn(b[0], b[1])
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// Bands divides [0, height) into at most n contiguous half-open ranges of
// near-equal size. It returns nil for a non-positive height.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	bands := make([][2]int, 0, n)
	step, rem := height/n, height%n
	y := 0
	for i := range n {
		h := step
		if i < rem {
			h++
		}
		bands = append(bands, [2]int{y, y + h})
		y += h
	}
	return bands
}

// Close stops the workers. It is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
