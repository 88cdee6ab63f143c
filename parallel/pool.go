package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type Stats struct {
	Processed uint64
	Errors    uint64
}

func (s Stats) Total() uint64 {
	return s.Processed + s.Errors
}

// Pool runs jobs on a fixed number of goroutines and counts their outcome.
// With a single worker, jobs run synchronously inside Go.
type Pool struct {
	wg        sync.WaitGroup
	work      chan func()
	stop      func()
	processed atomic.Uint64
	errors    atomic.Uint64
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{stop: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.stop = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Go schedules job. It must not be called after Wait.
func (p *Pool) Go(job func() error) {
	f := func() {
		if err := job(); err != nil {
			p.errors.Add(1)
			return
		}
		p.processed.Add(1)
	}

	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs, waits for the scheduled ones and returns the
// counts.
func (p *Pool) Wait() Stats {
	p.stop()
	p.wg.Wait()
	return Stats{
		Processed: p.processed.Load(),
		Errors:    p.errors.Load(),
	}
}
