package parallel

import (
	"context"
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs submitted functions on a fixed set of goroutines. A pool started
// with a single worker runs everything inline on the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for {
					f, ok := <-workChan
					if !ok {
						return
					}
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Workers returns the number of goroutines serving the pool; a nil pool has
// one.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Rows calls fn once for every row in [0, n) and waits for all of them. No
// further rows are scheduled once ctx is done; rows already running finish.
// A nil pool runs the rows in order on the caller's goroutine.
//
// Rows must not be called after the pool has been shut down with Wait(true)
// or Cancel.
func (p *Pool) Rows(ctx context.Context, n int, fn func(y int)) error {
	if p == nil || p.workers == 1 {
		for y := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y)
		}
		return ctx.Err()
	}

	var rows sync.WaitGroup
	for y := range n {
		if ctx.Err() != nil {
			break
		}
		rows.Add(1)
		p.Do(func() {
			defer rows.Done()
			if ctx.Err() != nil {
				return
			}
			fn(y)
		})
	}
	rows.Wait()

	return ctx.Err()
}

// Tasks runs every fn on the pool and waits for them to finish.
func (p *Pool) Tasks(fns ...func()) {
	if p == nil {
		for _, fn := range fns {
			fn()
		}
		return
	}

	var tasks sync.WaitGroup
	for _, fn := range fns {
		tasks.Add(1)
		p.Do(func() {
			defer tasks.Done()
			fn()
		})
	}
	tasks.Wait()
}
